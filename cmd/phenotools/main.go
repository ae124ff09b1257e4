// Package main provides the phenotools CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pnrobinson/phenotools/pkg/annotation"
	"github.com/pnrobinson/phenotools/pkg/dateutil"
	"github.com/pnrobinson/phenotools/pkg/ontology"
	"github.com/pnrobinson/phenotools/pkg/oboparser"
	"github.com/pnrobinson/phenotools/pkg/runconfig"
	"github.com/pnrobinson/phenotools/pkg/termid"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "phenotools",
		Short: "phenotools - ontology graph and annotation analysis",
		Long: `phenotools ingests a bio-ontology distributed as an OBO-graph JSON
document and a tab-separated disease-to-phenotype annotation corpus, then
answers descendants-of-target and top-level-category questions against
them.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("phenotools v%s\n", version)
		},
	})

	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load an ontology and print its build statistics",
		RunE:  runLoad,
	}
	addConfigFlags(loadCmd)
	rootCmd.AddCommand(loadCmd)

	descendantsCmd := &cobra.Command{
		Use:   "descendants",
		Short: "Run the descendants-of-target annotation analysis",
		RunE:  runDescendants,
	}
	addConfigFlags(descendantsCmd)
	descendantsCmd.Flags().String("target", "", "target term id (required unless target_term or PHENOTOOLS_TARGET_TERM is set)")
	descendantsCmd.Flags().String("out", "", "output file (default: stdout)")
	rootCmd.AddCommand(descendantsCmd)

	toplevelCmd := &cobra.Command{
		Use:   "toplevel",
		Short: "Run the top-level-category annotation analysis",
		RunE:  runToplevel,
	}
	addConfigFlags(toplevelCmd)
	toplevelCmd.Flags().String("out", "", "output file (default: stdout)")
	rootCmd.AddCommand(toplevelCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-database annotation statistics",
		RunE:  runStats,
	}
	addConfigFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a YAML run configuration file")
	cmd.Flags().String("ontology", "", "path to the OBO-graph JSON ontology file")
	cmd.Flags().String("annotations", "", "path to the annotation TSV file")
	cmd.Flags().String("window-start", "", "lower bound of the analysis date window")
	cmd.Flags().String("window-end", "", "upper bound of the analysis date window")
	cmd.Flags().Bool("strict", false, "fail the ontology build on any invalid edge")
}

// loadedConfig merges a --config file, environment variables, and
// command flags into one runconfig.Config, flags taking precedence.
func loadedConfig(cmd *cobra.Command) *runconfig.Config {
	configPath, _ := cmd.Flags().GetString("config")
	cfg := runconfig.LoadFromEnvOrFile(configPath)

	if v, _ := cmd.Flags().GetString("ontology"); v != "" {
		cfg.OntologyPath = v
	}
	if v, _ := cmd.Flags().GetString("annotations"); v != "" {
		cfg.AnnotationPath = v
	}
	if v, _ := cmd.Flags().GetString("window-start"); v != "" {
		cfg.WindowStart = v
	}
	if v, _ := cmd.Flags().GetString("window-end"); v != "" {
		cfg.WindowEnd = v
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.Strict = true
	}
	return cfg
}

func loadOntology(cfg *runconfig.Config) (*ontology.Ontology, *oboparser.Result, error) {
	if cfg.OntologyPath == "" {
		return nil, nil, fmt.Errorf("no ontology path configured")
	}
	f, err := os.Open(cfg.OntologyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening ontology: %w", err)
	}
	defer f.Close()

	parsed, err := oboparser.Load(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing ontology: %w", err)
	}

	mode := ontology.Lenient
	if cfg.Strict {
		mode = ontology.Strict
	}
	ont, err := ontology.Build(parsed.Terms, parsed.Edges, parsed.Properties, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("building ontology: %w", err)
	}
	return ont, parsed, nil
}

func loadAnnotations(cfg *runconfig.Config, reporter annotation.Reporter) ([]annotation.Record, error) {
	if cfg.AnnotationPath == "" {
		return nil, fmt.Errorf("no annotation path configured")
	}
	f, err := os.Open(cfg.AnnotationPath)
	if err != nil {
		return nil, fmt.Errorf("opening annotations: %w", err)
	}
	defer f.Close()
	return annotation.ParseTSV(f, reporter)
}

func resolveWindow(cfg *runconfig.Config) (lo, hi dateutil.Date, err error) {
	lo = dateutil.DefaultLowerBound()
	hi = dateutil.DefaultUpperBound(time.Now())
	if cfg.WindowStart != "" {
		if lo, err = dateutil.Parse(cfg.WindowStart); err != nil {
			return lo, hi, err
		}
	}
	if cfg.WindowEnd != "" {
		if hi, err = dateutil.Parse(cfg.WindowEnd); err != nil {
			return lo, hi, err
		}
	}
	return lo, hi, nil
}

func openOutput(cmd *cobra.Command) (*os.File, error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)
	ont, parsed, err := loadOntology(cfg)
	if err != nil {
		return err
	}
	stats := ont.Stats()
	fmt.Printf("current terms: %d\n", len(ont.CurrentIDs()))
	fmt.Printf("original edges: %d, built edges: %d, is_a edges: %d, skipped edges: %d\n",
		stats.OriginalEdgeCount, stats.BuiltEdgeCount, stats.IsAEdgeCount, stats.SkippedEdgeCount)
	for _, e := range parsed.Errors {
		fmt.Fprintln(os.Stderr, e)
	}
	return nil
}

func runDescendants(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)
	targetStr, _ := cmd.Flags().GetString("target")
	if targetStr == "" {
		targetStr = cfg.TargetTerm
	}
	if targetStr == "" {
		return fmt.Errorf("--target is required")
	}
	target, err := termid.Parse(targetStr)
	if err != nil {
		return fmt.Errorf("parsing --target: %w", err)
	}

	ont, _, err := loadOntology(cfg)
	if err != nil {
		return err
	}
	reporter := &annotation.SliceReporter{}
	records, err := loadAnnotations(cfg, reporter)
	if err != nil {
		return err
	}
	lo, hi, err := resolveWindow(cfg)
	if err != nil {
		return err
	}

	out, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	if err := annotation.RunDescendants(ont, records, target, lo, hi, out, reporter); err != nil {
		return err
	}
	for _, e := range reporter.Entries {
		fmt.Fprintln(os.Stderr, e)
	}
	return nil
}

func runToplevel(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)
	ont, _, err := loadOntology(cfg)
	if err != nil {
		return err
	}
	reporter := &annotation.SliceReporter{}
	records, err := loadAnnotations(cfg, reporter)
	if err != nil {
		return err
	}
	lo, hi, err := resolveWindow(cfg)
	if err != nil {
		return err
	}

	var topLevels []termid.ID
	if len(cfg.TopLevelTerms) > 0 {
		for _, s := range cfg.TopLevelTerms {
			id, err := termid.Parse(s)
			if err != nil {
				return fmt.Errorf("parsing configured top-level term %q: %w", s, err)
			}
			topLevels = append(topLevels, id)
		}
	} else {
		root, ok := findRoot(ont)
		if !ok {
			return fmt.Errorf("no top-level terms configured and no root could be inferred")
		}
		topLevels, err = ont.TopLevelChildren(root)
		if err != nil {
			return err
		}
	}

	out, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if out != os.Stdout {
		defer out.Close()
	}

	annotation.RunTopLevelCategories(ont, records, topLevels, lo, hi, out, reporter)
	for _, e := range reporter.Entries {
		fmt.Fprintln(os.Stderr, e)
	}
	return nil
}

// findRoot picks the current id with the highest out-degree of
// IS_A_INVERSE edges as a best-effort root when no top-level term list
// was configured (top_level_terms in the YAML configuration or
// PHENOTOOLS_TOP_LEVEL_TERMS); this is a convenience fallback only.
func findRoot(ont *ontology.Ontology) (termid.ID, bool) {
	var best termid.ID
	bestCount := -1
	for _, id := range ont.CurrentIDs() {
		children, err := ont.TopLevelChildren(id)
		if err != nil {
			continue
		}
		if len(children) > bestCount {
			bestCount = len(children)
			best = id
		}
	}
	return best, bestCount > 0
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)
	reporter := &annotation.SliceReporter{}
	records, err := loadAnnotations(cfg, reporter)
	if err != nil {
		return err
	}
	stats := annotation.ComputeStats(records)
	stats.WriteReport(os.Stdout)
	return nil
}
