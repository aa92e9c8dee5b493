package docs

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/gregoryv/umd/script"
	"github.com/gregoryv/web"
	. "github.com/gregoryv/web"
	"github.com/gregoryv/web/theme"
	"github.com/gregoryv/web/toc"
)

// WriteManual writes man.html to dir. The example script is replayed
// and its output included.
func WriteManual(dir, example string) {
	NewFile("man.html",
		Html(
			Head(
				Title("umd - manual"),
				Style(
					theme.GoldenSpace(),
					theme.GoishColors(),
					manTheme(),
				),
			),
			Body(Manual(example)),
		),
	).SaveTo(dir)
}

func Manual(example string) *Element {
	nav := Nav(A(Name("toc")), A(Href("#toc"), B("Table of contents")))
	doc := Wrap(
		Header(
			time.Now().Format("2006-01-02 15:04:05"),
		),

		Article(
			H1("umd - manual"),

			P(`The umd command replays diagram editing scripts on a
			model and prints the resulting ownership tree and line
			connections. Project source is found at gregoryv/umd.`),

			nav,

			H2("Design"),

			Div(Class("figure"), NewDesignDiagram().Inline()),

			P(`Lines connect to items through connectors looked up
			by item and line kind. Containment lines keep the head
			subject the owner of the tail subject.`),

			Div(Class("figure"), NewConnectSequence().Inline()),

			H2("Scripts"),

			P(`Scripts declare elements and diagrams by name followed
			by steps. Supported steps are drop, contain, link,
			connect, disconnect and remove.`),

			Pre(Class("cmd"), readFile(example)),

			H3("run"),

			P(`Output of umd run for the script above.`),

			Pre(Class("cmd"), replay(example)),

			H3("find"),

			P(`Qualified names are matched with + for one level and
			a trailing # for any number of levels, e.g. root/+/Order.`),

			H3("watch"),

			P(`Replays the script each time it's saved.`),
		),
	)
	LinkAll(doc, map[string]string{
		"gregoryv/umd": "https://github.com/gregoryv/umd",
	})
	toc.MakeTOC(nav, doc, "h2", "h3", "h4")
	return doc
}

func readFile(path string) interface{} {
	data, err := os.ReadFile(path)
	if err != nil {
		return Span(Class("fail"), err.Error())
	}
	return string(data)
}

func replay(path string) interface{} {
	s, err := script.Load(path)
	if err != nil {
		return Span(Class("fail"), err.Error())
	}
	sess, err := script.Run(s)
	if err != nil {
		return Span(Class("fail"), err.Error())
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("$ umd run -f %s\n", path))
	_ = sess.WriteTree(&buf)
	buf.WriteString("\n")
	_ = sess.WriteConnections(&buf)
	for _, err := range sess.Rejected {
		fmt.Fprintln(&buf, "rejected", err)
	}
	return buf.String()
}

func manTheme() *web.CSS {
	css := web.NewCSS()
	css.Style("body",
		"max-width: 19cm",
		"margin: auto auto",
		"font-family: sans-serif",
	)
	css.Style("h1,h2,h3,h4,h5",
		"font-family: serif",
	)
	css.Style("header",
		"text-align: right",
	)
	css.Style("nav ul",
		"list-style-type: none",
	)
	css.Style("div.figure",
		"width: 100%",
		"text-align: center",
	)
	css.Style("li.h3", "margin-left: 2em")
	css.Style("li.h4", "margin-left: 4em")
	css.Style("pre.cmd",
		"border-left: 7px #727272 solid",
		"padding: .6em 1.6em .6em 1.6em",
		"background-color: #eaeaea",
	)
	css.Style(".fail", "color: red")
	return css
}
