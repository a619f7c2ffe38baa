package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/hscells/wsieval"
	"github.com/hscells/wsieval/cache"
	"github.com/hscells/wsieval/eval"
	"github.com/hscells/wsieval/output"
	"github.com/hscells/wsieval/pipeline"
	"github.com/hscells/wsieval/table"
	"log"
	"os"
	"path"
	"strings"
)

var (
	name    = "wsieval"
	version = "19.Oct.2026"
)

type args struct {
	InFile        string   `help:"tab-separated file with a header and no quoting" arg:"required,positional"`
	ClusterColumn string   `help:"column the WSI system output is read from (default: cluster)" arg:"-c"`
	ClusterFile   string   `help:"file the WSI system output is read from, with rows in the same order as INFILE" arg:"-f"`
	Output        string   `help:"write the results to this file instead of standard output" arg:"-o"`
	Format        string   `help:"output format (tsv/json)"`
	Summary       bool     `help:"only output the mean RI, sRI, and wsRI" arg:"-s"`
	Workers       int      `help:"number of heads to score at once" arg:"-j"`
	Cache         string   `help:"directory to cache the scores of heads in"`
	Progress      bool     `help:"display a progress bar"`
	Measure       []string `help:"additional measure to output (f0.5/f3/precision/recall/f1/ri/sri/wsri)" arg:"-m,separate"`
	Config        string   `help:"TOML file with default options (default: ~/.wsieval, if it exists)"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
# %s

Scores word sense induction output against gold sense annotations.`, name, version)
}

func (args) Epilogue() string {
	return `INFILE contains at least:
    - a 'head' column
    - two or more columns with the prefix 'sense' with the sense annotation

When -c CLUSTER_COL is present, the WSI system output is read from the column
named CLUSTER_COL (default='cluster').

When -f CLUSTER_FILE is present, the WSI system output is read from
CLUSTER_FILE, a tab-separated file with a header and no quoting, with rows in
the same order as in INFILE. The CLUSTER_COL option applies to CLUSTER_FILE as
well.

The cluster values are arbitrary strings, only equality is considered, except
for the 'sense' columns, for which values ending with 'x' are ignored.`
}

type config struct {
	ClusterColumn string   `toml:"cluster_column"`
	Format        string   `toml:"format"`
	Workers       int      `toml:"workers"`
	Cache         string   `toml:"cache"`
	Progress      bool     `toml:"progress"`
	Measures      []string `toml:"measures"`
}

// loadConfig reads the defaults file. A missing default file is not an error, but a missing explicit one is.
func loadConfig(file string) (config, error) {
	var c config
	if len(file) == 0 {
		dir, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		file = path.Join(dir, ".wsieval")
		if _, err := os.Stat(file); err != nil {
			return c, nil
		}
	}
	_, err := toml.DecodeFile(file, &c)
	return c, err
}

// merge fills in every option not given on the command line from the config.
func (a *args) merge(c config) {
	if len(a.ClusterColumn) == 0 {
		a.ClusterColumn = c.ClusterColumn
	}
	if len(a.ClusterColumn) == 0 {
		a.ClusterColumn = table.DefaultClusterColumn
	}
	if len(a.Format) == 0 {
		a.Format = c.Format
	}
	if len(a.Format) == 0 {
		a.Format = "tsv"
	}
	if a.Workers == 0 {
		a.Workers = c.Workers
	}
	if len(a.Cache) == 0 {
		a.Cache = c.Cache
	}
	a.Progress = a.Progress || c.Progress
	if len(a.Measure) == 0 {
		a.Measure = c.Measures
	}
}

func main() {
	var args args
	p := arg.MustParse(&args)

	c, err := loadConfig(args.Config)
	if err != nil {
		p.Fail(err.Error())
	}
	args.merge(c)

	formatter, ok := output.Formatters[strings.ToLower(args.Format)]
	if !ok {
		p.Fail(fmt.Sprintf("unknown format %q", args.Format))
	}
	if args.Summary {
		formatter = output.SummaryReportFormatter
	}

	measures, err := eval.Lookup(args.Measure...)
	if err != nil {
		p.Fail(err.Error())
	}

	source := table.NewFileSource(args.InFile,
		table.ClusterColumn(args.ClusterColumn),
		table.ClusterFile(args.ClusterFile))

	components := []func() interface{}{wsieval.Workers(args.Workers)}
	if len(args.Cache) > 0 {
		components = append(components, wsieval.Cache(cache.NewDirResultCache(args.Cache)))
	}
	if args.Progress {
		components = append(components, wsieval.Progress(os.Stderr))
	}

	report := output.Report{}
	for _, m := range measures {
		report.Measures = append(report.Measures, m.Name())
	}

	results := make(chan pipeline.Result)
	go wsieval.NewPipeline(source, components...).Execute(results)

	for result := range results {
		switch result.Type {
		case pipeline.Error:
			log.Fatalln(result.Error)
		case pipeline.Group:
			report.Results = append(report.Results, result.Group)
			if len(measures) > 0 {
				counters := result.Group.Counters()
				extra := make([]float64, len(measures))
				for i, m := range measures {
					extra[i] = m.Score(counters)
				}
				report.Extra = append(report.Extra, extra)
			}
		case pipeline.Summary:
			report.Summary = result.Summary
		}
	}

	s, err := formatter(report)
	if err != nil {
		log.Fatalln(err)
	}

	if len(args.Output) > 0 {
		err = os.WriteFile(args.Output, []byte(s), 0664)
		if err != nil {
			log.Fatalln(err)
		}
		return
	}

	_, err = os.Stdout.WriteString(s)
	if err != nil {
		log.Fatalln(err)
	}
}
