package instrument

import (
	"context"
	"io"
	"regexp"

	"github.com/a-h/templ"
)

// DefaultElement is rendered when Wrap is given an empty or invalid element name.
const DefaultElement = "div"

var elementName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Wrap returns a component that renders element with t's attributes around child.
// Element names that are not plain tag names fall back to DefaultElement.
// A nil child renders an empty element.
func Wrap(t Tag, element string, child templ.Component) templ.Component {
	if !elementName.MatchString(element) {
		element = DefaultElement
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+element); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, t.OrderedAttrs()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if child != nil {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+element+">")
		return err
	})
}

// Text returns a component rendering escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
