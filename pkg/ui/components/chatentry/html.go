package chatentry

import (
	"fmt"
	"html/template"
	"io"
	"regexp"
	"sort"
	"strings"
)

const entryTemplate = `<li class="{{.Classes.Item}}" title="{{.Title}}" data-origin="{{.Origin}}"{{range .Attrs}} {{.}}{{end}}>
<div class="{{.Classes.Header}}">{{if .Header.Name}}<span class="{{.Classes.Name}}">{{.Header.Name}}</span>{{end}}<span class="{{.Classes.Time}}">{{.Header.TimeText}}</span></div>
{{if .Body.OrderSummary}}<div class="{{.Classes.Body}}"><span class="{{.Classes.Label}}">{{.Body.Label}}</span><p class="{{.Classes.Text}}">{{.Body.Text}}</p></div>{{else}}<div class="{{.Classes.Body}}">{{.Body.Text}}</div>{{end}}
</li>
`

var entryHTML = template.Must(template.New("entry").Parse(entryTemplate))

var attrNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

type htmlEntry struct {
	Title   string
	Origin  Origin
	Header  Header
	Body    Body
	Classes Classes
	Attrs   []template.HTMLAttr
}

// RenderHTML writes e as an <li> element. Attribute names that are not
// plain identifiers, event handler attributes and the names the element
// sets itself are skipped.
func RenderHTML(w io.Writer, e Entry) error {
	view := htmlEntry{
		Title:   e.Title,
		Origin:  e.Origin,
		Header:  e.Header,
		Body:    e.Body,
		Classes: e.Classes,
		Attrs:   htmlAttrs(e.Attrs),
	}
	if err := entryHTML.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render entry: %w", err)
	}
	return nil
}

func htmlAttrs(attrs map[string]string) []template.HTMLAttr {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if attrNamePattern.MatchString(name) && !reservedAttr(name) && !strings.HasPrefix(strings.ToLower(name), "on") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]template.HTMLAttr, 0, len(names))
	for _, name := range names {
		out = append(out, template.HTMLAttr(name+`="`+template.HTMLEscapeString(attrs[name])+`"`))
	}
	return out
}

// RenderListHTML writes entries inside a <ul> in the given order.
func RenderListHTML(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, "<ul class=\"flex flex-col gap-2\">\n"); err != nil {
		return fmt.Errorf("failed to render list: %w", err)
	}
	for _, e := range entries {
		if err := RenderHTML(w, e); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</ul>\n"); err != nil {
		return fmt.Errorf("failed to render list: %w", err)
	}
	return nil
}
