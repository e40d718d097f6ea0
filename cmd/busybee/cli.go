package main

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cnmi-csc/busybee/errors"
	"github.com/cnmi-csc/busybee/internal/adapter/presenter"
	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/minutes"
)

// newCLIApp creates the CLI application with all commands. svc is resolved
// lazily so help output never connects to any backend.
func newCLIApp(svc func(ctx context.Context) (minutes.Service, error), stdin io.Reader, stdout io.Writer) *cli.App {
	streams := &cliIO{in: stdin, out: stdout}
	app := &cli.App{
		Name:    "busybee",
		Usage:   "Turn meeting transcripts and recordings into minutes",
		Version: Version,
		Writer:  stdout,
		Commands: []*cli.Command{
			processCmd(svc, streams, false),
			processCmd(svc, streams, true),
			recordCmd(svc, streams),
			normalizeCmd(svc, streams),
			classifyCmd(svc, streams),
			historyCmd(svc, streams),
			documentsCmd(svc, streams),
			templateCmd(svc, streams),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

type cliIO struct {
	in  io.Reader
	out io.Writer
}

func requestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Meeting title (defaults to the file name)"},
		&cli.StringFlag{Name: "type", Usage: "Meeting type: general|board|case (detected when empty)"},
		&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "Document kind: minutes|general|case_summary"},
		&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "Analysis mode: ai|heuristic"},
		&cli.BoolFlag{Name: "no-normalize", Usage: "Keep names exactly as transcribed"},
	}
}

func requestFrom(c *cli.Context, title, transcript string) *minutes.Request {
	if t := c.String("title"); t != "" {
		title = t
	}
	req := &minutes.Request{
		Title:       title,
		Transcript:  transcript,
		MeetingType: entities.MeetingType(c.String("type")),
		Kind:        entities.DocumentKind(c.String("kind")),
		Mode:        minutes.Mode(c.String("mode")),
	}
	if c.Bool("no-normalize") {
		off := false
		req.NormalizeNames = &off
	}
	return req
}

// processCmd creates the process command, or the preview command when
// preview is set.
func processCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO, preview bool) *cli.Command {
	name, usage := "process", "Generate and store minutes from a transcript file (or stdin)"
	if preview {
		name, usage = "preview", "Generate minutes without storing anything"
	}
	flags := append(requestFlags(),
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Also write the markdown to this path"},
		&cli.BoolFlag{Name: "markdown", Usage: "Print the markdown instead of JSON"},
	)
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[transcript-file]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			text, title, err := streams.readInput(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}

			req := requestFrom(c, title, text)
			var res *minutes.Result
			if preview {
				res, err = s.Preview(c.Context, req)
			} else {
				res, err = s.Process(c.Context, req)
			}
			if err != nil {
				return outputError(err)
			}

			if out := c.String("out"); out != "" {
				if err := os.WriteFile(out, []byte(res.Document.Markdown), 0o644); err != nil {
					return outputError(err)
				}
			}
			if c.Bool("markdown") {
				_, err := fmt.Fprintln(streams.out, res.Document.Markdown)
				return err
			}
			return streams.outputJSON(presenter.ToProcessResponse(res))
		},
	}
}

// recordCmd creates the record command.
func recordCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:      "record",
		Usage:     "Transcribe a recording and generate minutes from it",
		ArgsUsage: "<recording-file>",
		Flags:     requestFlags(),
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return outputError(errors.ErrRecordingRequired())
			}
			f, err := os.Open(path)
			if err != nil {
				return outputError(err)
			}
			defer f.Close()

			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			res, err := s.ProcessRecording(c.Context, &minutes.RecordingRequest{
				Request:  *requestFrom(c, titleFromPath(path), ""),
				Filename: filepath.Base(path),
				Body:     f,
			})
			if err != nil {
				return outputError(err)
			}
			return streams.outputJSON(presenter.ToProcessResponse(res))
		},
	}
}

// normalizeCmd creates the normalize command.
func normalizeCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Correct roster names in a text file (or stdin) and print the result",
		ArgsUsage: "[file]",
		Action: func(c *cli.Context) error {
			text, _, err := streams.readInput(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			normalized, _ := s.Normalize(text)
			_, err = fmt.Fprintln(streams.out, normalized)
			return err
		},
	}
}

// classifyCmd creates the classify command.
func classifyCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Tell whether a document is an official order or a note",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Document title"},
		},
		Action: func(c *cli.Context) error {
			text, title, err := streams.readInput(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			if t := c.String("title"); t != "" {
				title = t
			}
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			isOrder, folder := s.Classify(title, text)
			return streams.outputJSON(map[string]interface{}{"is_order": isOrder, "folder": folder})
		},
	}
}

// historyCmd creates the history command.
func historyCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently processed documents",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum entries"},
		},
		Action: func(c *cli.Context) error {
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			entries, err := s.History(c.Context, c.Int64("limit"))
			if err != nil {
				return outputError(err)
			}
			return streams.outputJSON(presenter.ToHistoryResponse(entries))
		},
	}
}

// documentsCmd creates the documents command.
func documentsCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:  "documents",
		Usage: "List the files in an output folder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "folder", Aliases: []string{"f"}, Value: string(entities.FolderNotes), Usage: "recordings|transcripts|notes|official-orders"},
		},
		Action: func(c *cli.Context) error {
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			files, err := s.Documents(c.Context, entities.Folder(c.String("folder")))
			if err != nil {
				return outputError(err)
			}
			return streams.outputJSON(presenter.ToStoredFilesResponse(files))
		},
	}
}

// templateCmd creates the template command.
func templateCmd(svc func(context.Context) (minutes.Service, error), streams *cliIO) *cli.Command {
	return &cli.Command{
		Name:      "template",
		Usage:     "Print the template used for a document kind",
		ArgsUsage: "<minutes|case_summary>",
		Action: func(c *cli.Context) error {
			s, err := svc(c.Context)
			if err != nil {
				return outputError(err)
			}
			body, err := s.Template(c.Context, entities.DocumentKind(c.Args().First()))
			if err != nil {
				return outputError(err)
			}
			_, err = fmt.Fprint(streams.out, body)
			return err
		},
	}
}

// readInput reads a file, or stdin when path is empty or "-". The returned
// title is derived from the file name.
func (c *cliIO) readInput(path string) (string, string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(c.in)
		path = ""
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", err
	}
	return string(data), titleFromPath(path), nil
}

// outputJSON writes JSON output
func (c *cliIO) outputJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", appErr.Code, appErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// titleFromPath turns "regular_meeting-march.txt" into "regular meeting march"
func titleFromPath(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
