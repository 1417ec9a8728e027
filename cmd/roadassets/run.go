package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/RoyCoates/EGM722Project/pkg/analytics"
	"github.com/RoyCoates/EGM722Project/pkg/chart"
	"github.com/RoyCoates/EGM722Project/pkg/cost"
	"github.com/RoyCoates/EGM722Project/pkg/export"
	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
	"github.com/RoyCoates/EGM722Project/pkg/validation"
	"github.com/RoyCoates/EGM722Project/pkg/webmap"
)

func (a *app) loader() *layer.Loader {
	l := layer.NewLoader(a.log)
	if a.cfg.Progress {
		l.Progress = os.Stderr
	}
	return l
}

// loadAndValidate loads the project, checks it, then loads and checks every
// layer. The report is returned even when it is invalid.
func (a *app) loadAndValidate(projectDir string) (*spec.Project, *layer.Set, *validation.Report, error) {
	p, err := spec.LoadProject(projectDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading project: %w", err)
	}
	report := validation.ValidateProject(p)
	if !report.Valid {
		return p, nil, report, nil
	}

	set, err := a.loader().LoadAll(p, projectDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading layers: %w", err)
	}
	report.Merge(validation.ValidateLayers(p, set))
	return p, set, report, nil
}

func (a *app) runValidate(w io.Writer, projectDir string) error {
	_, _, report, err := a.loadAndValidate(projectDir)
	if err != nil {
		return err
	}
	printValidationReport(w, report)
	return report.Err()
}

func (a *app) runBuild(w io.Writer, projectDir string) error {
	p, set, report, err := a.loadAndValidate(projectDir)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return report.Err()
	}
	for _, warn := range report.Warnings {
		a.log.WithField("layer", warn.Layer).Warn(warn.Message)
	}

	lighting := set.Get(p.Lighting.Layer)
	summaries := analytics.SummarizeJunctions(lighting, p.Lighting)
	top := analytics.Top(summaries, p.Chart.TopN)
	savings := cost.Estimate(summaries, p.Savings, p.Chart.TopN)

	outDir := a.cfg.Output.Dir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out := func(name string) string { return filepath.Join(outDir, name) }

	m, err := webmap.New(p, set)
	if err != nil {
		return fmt.Errorf("building map: %w", err)
	}
	if err := webmap.WriteFile(out(p.Outputs.Map), m); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"path":     out(p.Outputs.Map),
		"features": m.FeatureCount(),
		"labels":   m.LabelCount(),
	}).Info("map written")

	if err := chart.Render(out(p.Outputs.Chart), top, p.Chart); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	a.log.WithField("path", out(p.Outputs.Chart)).Info("chart written")

	if err := export.WriteSavingsWorkbook(out(p.Outputs.Workbook), savings); err != nil {
		return err
	}
	if err := export.WriteCSV(out(p.Outputs.CSV), lighting); err != nil {
		return err
	}
	a.log.WithField("dir", outDir).Info("exports written")

	printJunctionSummary(w, top)
	fmt.Fprintln(w)
	printSavingsReport(w, savings)
	return nil
}

// runSummary reads only the lighting layer and prints the tables.
func (a *app) runSummary(w io.Writer, projectDir string) error {
	p, err := spec.LoadProject(projectDir)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	def := p.LayerByName(p.Lighting.Layer)
	if def == nil {
		return fmt.Errorf("lighting layer %q is not defined in the project", p.Lighting.Layer)
	}

	lighting, err := a.loader().Load(*def, p.LayerPath(projectDir, *def), p.SourceCRS)
	if err != nil {
		return err
	}
	for _, f := range []string{p.Lighting.JunctionField, p.Lighting.ScheduledField} {
		if !lighting.HasField(f) {
			return fmt.Errorf("layer %q has no field %s", lighting.Name, f)
		}
	}

	summaries := analytics.SummarizeJunctions(lighting, p.Lighting)
	if len(summaries) == 0 {
		return fmt.Errorf("layer %q has no lighting records", lighting.Name)
	}
	printJunctionSummary(w, analytics.Top(summaries, p.Chart.TopN))
	fmt.Fprintln(w)
	printSavingsReport(w, cost.Estimate(summaries, p.Savings, p.Chart.TopN))
	return nil
}

func (a *app) runInit(w io.Writer, projectDir string, force bool) error {
	path := filepath.Join(projectDir, spec.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := spec.Save(spec.Default(), path); err != nil {
		return err
	}
	a.log.WithField("path", path).Info("project file written")
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
