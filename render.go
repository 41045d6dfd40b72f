package linked

import (
	"iter"
	"strconv"
	"strings"
)

func render(prefix, sep string, seq iter.Seq[int]) string {
	var buf strings.Builder
	buf.WriteString(prefix)
	first := true
	for v := range seq {
		if !first {
			buf.WriteString(sep)
		}
		first = false
		buf.WriteString(strconv.Itoa(v))
	}
	if first {
		return "NULL"
	}

	buf.WriteString(" -> NULL")
	return buf.String()
}

// String renders the list as its elements joined by arrows, such as
// "30 -> 20 -> 10 -> NULL". An empty list renders as "NULL".
func (ls *Single) String() string {
	return render("", " -> ", ls.All())
}

// String renders the list from head to tail, such as
// "NULL <- 30 <-> 20 -> NULL". An empty list renders as "NULL".
func (ls *Double) String() string {
	return render("NULL <- ", " <-> ", ls.All())
}

// ReverseString is like String but walks the list from tail to head.
func (ls *Double) ReverseString() string {
	return render("NULL <- ", " <-> ", ls.Backward())
}
