// Package token provides the lexical layer under the parser and the
// encoder: byte classification tables, string quoting and unquoting
// with full escape handling, JSON number scanning, and byte-offset
// positions that render line/column context for error messages.
package token
