package view

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/99minutos/user-directory/internal/core/domain"
)

var reducedUsers = []domain.User{
	{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Nickname: "Ada"},
	{ID: "2", FirstName: "Grace", LastName: "Hopper", Email: "grace@x.com", Nickname: "Amazing Grace"},
}

// findAll returns every element named tag whose class attribute equals class
// (any class when class is empty).
func findAll(t *testing.T, markup, tag, class string) []*html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && (class == "" || attr(n, "class") == class) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func TestRenderUserList_RowsPerUser(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderUserList(&buf, reducedUsers); err != nil {
		t.Fatalf("render: %v", err)
	}

	rows := findAll(t, buf.String(), "tr", "User")
	if len(rows) != 2 {
		t.Fatalf("expected 2 User rows, got %d", len(rows))
	}
	if attr(rows[0], "data-key") != "1" || attr(rows[1], "data-key") != "2" {
		t.Errorf("expected rows keyed by id in input order")
	}

	cells := findAll(t, buf.String(), "td", "")
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	want := []string{"Ada Lovelace", "ada@x.com", "Ada", "Grace Hopper", "grace@x.com", "Amazing Grace"}
	for i, w := range want {
		if got := text(cells[i]); got != w {
			t.Errorf("cell %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestRenderUserList_StringIDs(t *testing.T) {
	var buf bytes.Buffer
	users := []domain.User{
		{ID: "u-1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "1.0", FirstName: "Grace", LastName: "Hopper"},
	}
	if err := RenderUserList(&buf, users); err != nil {
		t.Fatalf("render: %v", err)
	}

	rows := findAll(t, buf.String(), "tr", "User")
	if len(rows) != 2 {
		t.Fatalf("expected 2 User rows, got %d", len(rows))
	}
	if attr(rows[0], "data-key") != "u-1" || attr(rows[1], "data-key") != "1.0" {
		t.Errorf("expected ids rendered verbatim, got %q and %q", attr(rows[0], "data-key"), attr(rows[1], "data-key"))
	}
}

func TestRenderUserList_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderUserList(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	headers := findAll(t, buf.String(), "th", "")
	want := []string{"Full Name", "Email", "Nickname"}
	if len(headers) != len(want) {
		t.Fatalf("expected %d header cells, got %d", len(want), len(headers))
	}
	for i, w := range want {
		if got := text(headers[i]); got != w {
			t.Errorf("header %d: expected %q, got %q", i, w, got)
		}
	}
	if rows := findAll(t, buf.String(), "tr", "User"); len(rows) != 0 {
		t.Errorf("expected no User rows, got %d", len(rows))
	}
}

func TestRenderUserList_EscapesContent(t *testing.T) {
	var buf bytes.Buffer
	users := []domain.User{{ID: "3", FirstName: "<script>", LastName: "x", Email: "e", Nickname: "n"}}
	if err := RenderUserList(&buf, users); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("expected markup to be escaped: %s", buf.String())
	}
}

func TestRenderer_Index(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer().Render(&buf, "index", Page{Title: "Users", Content: "<p>hi</p>"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `<div id="root"><p>hi</p></div>`) {
		t.Errorf("expected content inside root: %s", buf.String())
	}
}
