// Package build implements the build subcommand: it loads a recipes
// file, compiles every recipe into a selector expression and writes the
// result out as a stylesheet or a selector list.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"csb/config"
	"csb/recipe"
	"csb/sheet"
	"csb/state"
)

// Run is the action behind the build subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipes file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Document.Format
	if to := cmd.String("to"); to != "" {
		if format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, switching to css", zap.Error(err))
			format = config.OutputFmtCss
		}
	}

	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}

// process handles the core generation logic independently of the CLI
// framework.
func process(ctx context.Context, src, dst string, format config.OutputFmt, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	f, err := recipe.Load(src)
	if err != nil {
		return err
	}
	env.Rpt.Store("recipes/"+filepath.Base(src), src)

	built, err := recipe.Compile(f, log)
	if err != nil {
		return fmt.Errorf("unable to compile recipes (%s): %w", src, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	values := Values{
		Name:       strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Format:     format.String(),
		SourceFile: src,
		Count:      len(built),
	}
	outputName := buildOutputPath(src, dst, format, values, env)

	// check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, render(built, format), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	env.Rpt.Store("result"+format.Ext(), outputName)

	log.Info("Selectors generated", zap.Int("count", len(built)), zap.String("to", outputName))
	return nil
}

// render serializes compiled selectors in the requested format. The list
// format is one "name: selector" line per recipe, css is a regular
// stylesheet where recipes without properties come out with empty rule
// bodies.
func render(built []recipe.Built, format config.OutputFmt) []byte {
	switch format {
	case config.OutputFmtList:
		var sb strings.Builder
		for _, b := range built {
			sb.WriteString(b.Name)
			sb.WriteString(": ")
			sb.WriteString(b.Expr.String())
			sb.WriteByte('\n')
		}
		return []byte(sb.String())
	case config.OutputFmtCss:
		var s sheet.Stylesheet
		for _, b := range built {
			s.Add(b.Expr.String(), b.Properties)
		}
		return []byte(s.String())
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
