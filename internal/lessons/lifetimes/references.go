package lifetimes

import (
	"fmt"
	"io"
	"strings"
)

// longest returns one of its arguments. Go needs no annotation tying the
// result to the inputs: the GC keeps whichever string is returned alive.
func longest(a, b string) string {
	if len(b) > len(a) {
		return b
	}
	return a
}

type node struct {
	name string
	next *node
}

// newList builds nodes inside the function; they survive because the
// returned head still points at them.
func newList(names ...string) *node {
	var head *node
	for i := len(names) - 1; i >= 0; i-- {
		head = &node{name: names[i], next: head}
	}
	return head
}

func demoReturningReferences(w io.Writer) {
	var result string
	{
		s1 := "a long string"
		s2 := "short"
		result = longest(s1, s2)
	}
	fmt.Fprintf(w, "  longest(...) outlives the block that declared its inputs: %q\n", result)

	var names []string
	for n := newList("a", "b", "c"); n != nil; n = n.next {
		names = append(names, n.name)
	}
	fmt.Fprintf(w, "  list built inside newList is still reachable: %v\n", names)
	fmt.Fprintln(w, "  Go has no dangling pointers: memory is freed only when nothing refers to it.")
}

// Excerpt holds a substring of a larger document. Substrings share the
// original bytes, so the whole document stays alive while an Excerpt does.
type Excerpt struct {
	Part string
}

func firstSentence(doc string) Excerpt {
	end := strings.IndexByte(doc, '.')
	if end < 0 {
		return Excerpt{Part: doc}
	}
	return Excerpt{Part: doc[:end+1]}
}

// firstSentenceClone copies the bytes so the document can be collected.
func firstSentenceClone(doc string) Excerpt {
	e := firstSentence(doc)
	e.Part = strings.Clone(e.Part)
	return e
}

// headerOf keeps a small window into a large buffer; the full-slice
// expression limits the window but the backing array stays reachable.
func headerOf(buf []byte) []byte { return buf[:4:4] }

// headerCopy detaches the header from the buffer.
func headerCopy(buf []byte) []byte { return append([]byte(nil), buf[:4]...) }

func demoHeldReferences(w io.Writer) {
	doc := "Call me Ishmael. Some years ago, never mind how long precisely..."
	ex := firstSentence(doc)
	fmt.Fprintf(w, "  firstSentence → %q (shares doc's bytes)\n", ex.Part)
	fmt.Fprintf(w, "  firstSentenceClone → %q (independent copy)\n", firstSentenceClone(doc).Part)

	buf := make([]byte, 1<<20)
	copy(buf, "GOLS")
	h := headerOf(buf)
	c := headerCopy(buf)
	fmt.Fprintf(w, "  headerOf(1 MiB buf)   = %q cap=%d, keeps 1 MiB alive\n", h, cap(h))
	fmt.Fprintf(w, "  headerCopy(1 MiB buf) = %q cap=%d, buf can be collected\n", c, cap(c))

	buf[0] = 'X'
	fmt.Fprintf(w, "  after buf[0] = 'X': headerOf sees %q, headerCopy sees %q\n", h, c)
}

// Parser keeps a reference to its input and hands out slices of it.
type Parser struct {
	input string
	pos   int
}

func NewParser(input string) *Parser { return &Parser{input: input} }

// Next returns the next word; the result points into p.input.
func (p *Parser) Next() (string, bool) {
	rest := strings.TrimLeft(p.input[p.pos:], " ")
	p.pos = len(p.input) - len(rest)
	if rest == "" {
		return "", false
	}
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		end = len(rest)
	}
	p.pos += end
	return rest[:end], true
}

func demoReceivers(w io.Writer) {
	p := NewParser("  borrow checker optional ")
	var words []string
	for {
		word, ok := p.Next()
		if !ok {
			break
		}
		words = append(words, word)
	}
	p = nil
	fmt.Fprintf(w, "  words = %q\n", words)
	fmt.Fprintln(w, "  p is nil now, but the input string lives on through the words")
	fmt.Fprintln(w, "  A pointer receiver that stores an argument makes it live as long as the receiver.")
}
