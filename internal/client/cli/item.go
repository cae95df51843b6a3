package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// List prints the matching items as a JSON array.
func (a *App) List(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.prompt)
	search := fs.String("search", "", "case-insensitive substring of applicationName")
	severity := fs.String("severity", "", "exact severity")
	stage := fs.String("stage", "", "exact stage")
	appType := fs.String("type", "", "exact applicationType")
	deployment := fs.String("deployment", "", "exact deployment")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	q := url.Values{}
	for name, v := range map[string]string{
		"search":          *search,
		"severity":        *severity,
		"stage":           *stage,
		"applicationType": *appType,
		"deployment":      *deployment,
	} {
		if v != "" {
			q.Set(name, v)
		}
	}

	items, err := a.api.List(ctx, q)
	if err != nil {
		return err
	}
	return writeJSON(a.out, items)
}

// Get prints one item.
func (a *App) Get(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter record id to show")
	if err != nil {
		return err
	}

	item, err := a.api.Get(ctx, id)
	if err != nil {
		return err
	}
	return writeJSON(a.out, item)
}

// Add creates an item from key=value arguments, or from a JSON object typed
// on stdin when there are none, and prints its ID.
func (a *App) Add(ctx context.Context, args []string) error {
	fields, err := a.fieldsArg(args)
	if err != nil {
		return err
	}

	id, err := a.api.Add(ctx, fields)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, id)
	return nil
}

// Update merges key=value arguments (or a JSON object from stdin) into the
// item.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter record id to update")
	if err != nil {
		return err
	}
	if len(args) > 0 {
		args = args[1:]
	}

	fields, err := a.fieldsArg(args)
	if err != nil {
		return err
	}

	if err := a.api.Update(ctx, id, fields); err != nil {
		return err
	}

	fmt.Fprintln(a.prompt, "Updated", id)
	return nil
}

// Delete removes an item.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter record id to delete")
	if err != nil {
		return err
	}

	if err := a.api.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintln(a.prompt, "Deleted", id)
	return nil
}

// idArg takes the ID from the first argument or prompts for it.
func (a *App) idArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, prompt, a.prompt)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errUsage
	}
	return id, nil
}

func (a *App) fieldsArg(args []string) (map[string]any, error) {
	if len(args) > 0 {
		return ParseFields(args)
	}

	text, err := GetMultiline(a.reader, "Enter item as a JSON object", a.prompt)
	if err != nil {
		return nil, err
	}
	return ParseObject(text)
}

// ParseFields turns key=value arguments into document fields. A value that
// parses as JSON (number, true, false, null, object, array, quoted string)
// keeps its JSON type; anything else is taken as a plain string.
func ParseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", errUsage, arg)
		}
		fields[key] = parseValue(raw)
	}
	return fields, nil
}

func parseValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	if _, err := dec.Token(); err != io.EOF {
		return raw
	}
	return v
}

// ParseObject decodes text as a JSON object.
func ParseObject(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: input must be a JSON object: %v", errUsage, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: input must be a JSON object", errUsage)
	}
	return fields, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
