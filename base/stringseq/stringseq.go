// Package stringseq provides functions for converting iterator sequences to strings.
package stringseq

import (
	"iter"
	"strings"
)

// AppendFunc appends f(el) for each element of its second argument to the given string builder.
// The separator string sep is placed between elements in the resulting string.
func AppendFunc[T any](b *strings.Builder, seq iter.Seq[T], sep string, f func(T) string) {
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(item))
		n++
	}
}

// JoinFunc concatenates f(el) for each element of its first argument to create a single string.
// The separator string sep is placed between elements in the resulting string.
func JoinFunc[T any](seq iter.Seq[T], sep string, f func(T) string) string {
	var b strings.Builder
	AppendFunc(&b, seq, sep, f)
	return b.String()
}
