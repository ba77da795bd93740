package cli

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/bytedance/sonic"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result.
// pretty renders the human-readable form; when nil the data is printed with %+v.
func (f *OutputFormatter) Success(data any, pretty func(w io.Writer) error) error {
	if f.Quiet {
		if ids, ok := quietIDs(data); ok {
			for _, id := range ids {
				if _, err := fmt.Fprintln(f.stdout(), id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return f.encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if pretty != nil {
		return pretty(f.stdout())
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.stderr(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns it unchanged,
// so commands can write `return formatter.Fail(err)`.
func (f *OutputFormatter) Fail(err error) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err))
	return err
}

func (f *OutputFormatter) encode(v any) error {
	return sonic.ConfigStd.NewEncoder(f.stdout()).Encode(v)
}

// quietIDs extracts ids from a single value or a slice of values with GetID
func quietIDs(data any) ([]string, bool) {
	type idGetter interface{ GetID() string }

	if g, ok := data.(idGetter); ok {
		return []string{g.GetID()}, true
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, false
	}
	ids := make([]string, 0, v.Len())
	for i := range v.Len() {
		g, ok := v.Index(i).Interface().(idGetter)
		if !ok {
			return nil, false
		}
		ids = append(ids, g.GetID())
	}
	return ids, true
}

func suggestionFor(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "set trello.api_key and trello.token in the config file, or run with --help"
	case ExitNotFound:
		return "run 'termllo boards' or 'termllo cards --board N' to see valid indexes"
	}
	return ""
}

// Color reports whether human-readable output goes to a terminal
func (f *OutputFormatter) Color() bool {
	if f.JSON || f.Quiet || f.Out != nil {
		return false
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
