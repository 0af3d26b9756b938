// bench/render.go
// Package: bench
package bench

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadTemplate reports a malformed template or an unrecognized
// placeholder tag.
var ErrBadTemplate = errors.New("bad benchmark template")

// Render substitutes the double-brace placeholders of tpl with the
// executed measurements of b and writes the filled text to w.
//
// Top level tags: {{title}}, {{unit}}, and the {{#result}}...{{/result}}
// section which repeats once per series. Inside a result section:
// {{name}}, {{epochs}}, {{median(elapsed)}}, {{average(elapsed)}},
// {{medianAbsolutePercentError(elapsed)}}, and the
// {{#measurement}}...{{/measurement}} section which repeats once per
// epoch. Inside a measurement section: {{elapsed}}, plus the inverted
// separators {{^-last}}...{{/last}} and {{^-first}}...{{/first}} that
// emit their body on every repetition except the last (resp. first).
func Render(tpl string, b *Bench, w io.Writer) error {
	var out strings.Builder
	if err := renderDocument(tpl, b, &out); err != nil {
		return err
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func renderDocument(tpl string, b *Bench, out *strings.Builder) error {
	for {
		tag, rest, ok, err := nextTag(tpl, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tpl = rest
		switch {
		case tag == "title":
			out.WriteString(b.title)
		case tag == "unit":
			out.WriteString(b.unit)
		case tag == "#result":
			body, rest, err := sectionBody(tpl, "result")
			if err != nil {
				return err
			}
			for _, r := range b.results {
				if err := renderResult(body, r, out); err != nil {
					return err
				}
			}
			tpl = rest
		default:
			return fmt.Errorf("%w: unknown tag {{%s}}", ErrBadTemplate, tag)
		}
	}
}

func renderResult(tpl string, r Result, out *strings.Builder) error {
	for {
		tag, rest, ok, err := nextTag(tpl, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tpl = rest
		switch {
		case tag == "name":
			out.WriteString(r.Name)
		case tag == "epochs":
			out.WriteString(strconv.Itoa(r.Epochs))
		case tag == "median(elapsed)":
			out.WriteString(formatNumber(Median(r.Measurements)))
		case tag == "average(elapsed)":
			out.WriteString(formatNumber(Mean(r.Measurements)))
		case tag == "medianAbsolutePercentError(elapsed)":
			out.WriteString(formatNumber(MedianAbsolutePercentError(r.Measurements)))
		case tag == "#measurement":
			body, rest, err := sectionBody(tpl, "measurement")
			if err != nil {
				return err
			}
			for i := range r.Measurements {
				first := i == 0
				last := i == len(r.Measurements)-1
				if err := renderMeasurement(body, r.Measurements[i], first, last, out); err != nil {
					return err
				}
			}
			tpl = rest
		default:
			return fmt.Errorf("%w: unknown tag {{%s}} in result section", ErrBadTemplate, tag)
		}
	}
}

func renderMeasurement(tpl string, elapsed float64, first, last bool, out *strings.Builder) error {
	for {
		tag, rest, ok, err := nextTag(tpl, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		tpl = rest
		switch tag {
		case "elapsed":
			out.WriteString(formatNumber(elapsed))
		case "^-last":
			body, rest, err := separatorBody(tpl, "last")
			if err != nil {
				return err
			}
			if !last {
				out.WriteString(body)
			}
			tpl = rest
		case "^-first":
			body, rest, err := separatorBody(tpl, "first")
			if err != nil {
				return err
			}
			if !first {
				out.WriteString(body)
			}
			tpl = rest
		default:
			return fmt.Errorf("%w: unknown tag {{%s}} in measurement section", ErrBadTemplate, tag)
		}
	}
}

// nextTag copies literal text up to the next {{tag}} into out and
// returns the tag name and the remaining template. ok is false when no
// tag remains, in which case the trailing literal has been written.
func nextTag(tpl string, out *strings.Builder) (tag, rest string, ok bool, err error) {
	i := strings.Index(tpl, "{{")
	if i < 0 {
		out.WriteString(tpl)
		return "", "", false, nil
	}
	out.WriteString(tpl[:i])
	tpl = tpl[i+2:]
	j := strings.Index(tpl, "}}")
	if j < 0 {
		return "", "", false, fmt.Errorf("%w: unterminated {{", ErrBadTemplate)
	}
	return tpl[:j], tpl[j+2:], true, nil
}

// sectionBody splits tpl at the {{/name}} closing tag of a section.
func sectionBody(tpl, name string) (body, rest string, err error) {
	closer := "{{/" + name + "}}"
	i := strings.Index(tpl, closer)
	if i < 0 {
		return "", "", fmt.Errorf("%w: missing %s", ErrBadTemplate, closer)
	}
	return tpl[:i], tpl[i+len(closer):], nil
}

// separatorBody splits tpl at the end of an inverted {{^-name}}
// separator. Both {{/name}} and {{/-name}} are accepted as closers.
func separatorBody(tpl, name string) (body, rest string, err error) {
	short := "{{/" + name + "}}"
	long := "{{/-" + name + "}}"
	i := strings.Index(tpl, short)
	j := strings.Index(tpl, long)
	switch {
	case i < 0 && j < 0:
		return "", "", fmt.Errorf("%w: missing %s", ErrBadTemplate, short)
	case j >= 0 && (i < 0 || j < i):
		return tpl[:j], tpl[j+len(long):], nil
	default:
		return tpl[:i], tpl[i+len(short):], nil
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
