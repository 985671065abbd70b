package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pathmend/pathmend/pkg/errors"
	"github.com/pathmend/pathmend/pkg/reconcile"
)

// Result is the reportable view of one reconciliation operation.
type Result struct {
	// Op names the operation, e.g. "dir" or "move".
	Op string `json:"op" yaml:"op"`
	// Path is the requested path.
	Path string `json:"path" yaml:"path"`
	// State is the outcome classification: failed, unchanged or changed.
	State string `json:"state" yaml:"state"`
	// Resolved is set when the effective path differs from the requested
	// one, as with temporary directory templates.
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	// Error carries the failure text when State is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Entries holds directory listing results.
	Entries []string `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// ResultOf converts an operation outcome into a reportable Result.
func ResultOf(op, path string, o reconcile.Outcome) Result {
	res := Result{Op: op, Path: path, State: string(o.State)}
	if o.Path != "" && o.Path != path {
		res.Resolved = o.Path
	}
	if o.Err != nil {
		res.Error = o.Err.Error()
	}
	return res
}

// Renderer writes results in a fixed format. The format must be concrete;
// resolve FormatAuto with Resolve before constructing a Renderer.
type Renderer struct {
	w      io.Writer
	format Format
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Result renders a single operation result.
func (r *Renderer) Result(res Result) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(res)
	case FormatYAML:
		return r.writeYAML(res)
	case FormatTerminal:
		return r.write(r.renderTerminal(res))
	default:
		return r.write(r.renderText(res))
	}
}

// Existence is the reportable view of a path predicate query.
type Existence struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

// Existence renders a predicate query result.
func (r *Renderer) Existence(e Existence) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(e)
	case FormatYAML:
		return r.writeYAML(e)
	case FormatTerminal:
		label := "absent"
		style := UnchangedStyle
		if e.Exists {
			label = "present"
			style = ChangedStyle
		}
		return r.write(fmt.Sprintf("%s %s", style.Render(fmt.Sprintf("%-10s", label)), PathStyle.Render(e.Path)))
	default:
		label := "absent"
		if e.Exists {
			label = "present"
		}
		return r.write(fmt.Sprintf("%-10s %s", label, e.Path))
	}
}

// Document renders an arbitrary value in the machine formats. The other
// formats fall back to YAML, which reads well enough for humans.
func (r *Renderer) Document(v interface{}) error {
	if r.format == FormatJSON {
		return r.writeJSON(v)
	}
	return r.writeYAML(v)
}

// Raw writes preformatted content unchanged, ensuring a trailing newline.
func (r *Renderer) Raw(content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := io.WriteString(r.w, content); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write output")
	}
	return nil
}

func (r *Renderer) renderTerminal(res Result) string {
	var b strings.Builder

	label := fmt.Sprintf("%-10s", res.State)
	b.WriteString(StateStyle(reconcile.State(res.State)).Sprint(label))
	b.WriteString(" ")
	b.WriteString(PathStyle.Render(res.Path))

	if res.Resolved != "" {
		b.WriteString("\n")
		b.WriteString(DetailStyle.Render(fmt.Sprintf("%-10s resolved to %s", "", res.Resolved)))
	}
	if res.Error != "" {
		b.WriteString("\n")
		b.WriteString(FailedStyle.Render(fmt.Sprintf("%-10s %s", "", res.Error)))
	}
	for _, entry := range res.Entries {
		b.WriteString("\n")
		b.WriteString(entry)
	}
	return b.String()
}

func (r *Renderer) renderText(res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-10s %s", res.State, res.Path)
	if res.Resolved != "" {
		fmt.Fprintf(&b, "\n%-10s resolved to %s", "", res.Resolved)
	}
	if res.Error != "" {
		fmt.Fprintf(&b, "\n%-10s %s", "", res.Error)
	}
	for _, entry := range res.Entries {
		fmt.Fprintf(&b, "\n%s", entry)
	}
	return b.String()
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
	}
	return nil
}

func (r *Renderer) writeYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML output")
	}
	if _, err := r.w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write output")
	}
	return nil
}

func (r *Renderer) write(line string) error {
	if _, err := fmt.Fprintln(r.w, line); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write output")
	}
	return nil
}
