// Package wsieval scores word sense induction systems by comparing their clusters with gold sense annotations.
package wsieval

import (
	"github.com/hscells/wsieval/cache"
	"github.com/hscells/wsieval/eval"
	"github.com/hscells/wsieval/pipeline"
	"github.com/hscells/wsieval/record"
	"github.com/hscells/wsieval/table"
	"gopkg.in/cheggaaa/pb.v1"
	"io"
	"log"
)

// Pipeline contains all the information for scoring a file of annotated instances.
type Pipeline struct {
	Source   table.Source
	Workers  int
	Cache    cache.ResultCacher
	Progress io.Writer
}

type workers int
type progress struct{ io.Writer }

// Workers sets how many groups may be scored at once.
func Workers(n int) func() interface{} {
	return func() interface{} {
		return workers(n)
	}
}

// Cache configures a cache that group results are read from and written to.
func Cache(c cache.ResultCacher) func() interface{} {
	return func() interface{} {
		return c
	}
}

// Progress displays a progress bar on w while groups are scored.
func Progress(w io.Writer) func() interface{} {
	return func() interface{} {
		return progress{w}
	}
}

// NewPipeline creates a new scoring pipeline. The source is required. Additional components are provided via the
// optional functional arguments.
func NewPipeline(source table.Source, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Source:  source,
		Workers: 1,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case workers:
			if v > 0 {
				p.Workers = int(v)
			}
		case cache.ResultCacher:
			p.Cache = v
		case progress:
			p.Progress = v.Writer
		}
	}

	return p
}

func (p Pipeline) score(g record.Group) (eval.GroupResult, bool) {
	if p.Cache != nil {
		if r, err := p.Cache.Get(g); err == nil {
			return r, true
		} else if err != cache.ErrCacheMiss {
			log.Println(err)
		}
	}

	r := eval.Score(g)

	if p.Cache != nil {
		if err := p.Cache.Set(g, r); err != nil {
			log.Printf("could not cache %s: %v\n", g.Head, err)
		}
	}
	return r, false
}

// Score computes the result of every group. Results are in the same order as the groups regardless of how many
// workers are used.
func (p Pipeline) Score(groups []record.Group) ([]eval.GroupResult, []bool) {
	results := make([]eval.GroupResult, len(groups))
	cached := make([]bool, len(groups))

	var bar *pb.ProgressBar
	if p.Progress != nil {
		bar = pb.New(len(groups))
		bar.Output = p.Progress
		bar.Start()
		defer bar.Finish()
	}

	concurrency := p.Workers
	if concurrency < 1 {
		concurrency = 1
	}

	// Each goroutine writes only to its own index of results and cached.
	sem := make(chan bool, concurrency)
	for i, g := range groups {
		sem <- true
		go func(idx int, group record.Group) {
			defer func() { <-sem }()
			results[idx], cached[idx] = p.score(group)
			log.Printf("processed %s\n", group.Head)
			if bar != nil {
				bar.Increment()
			}
		}(i, g)
	}

	// Wait until the last goroutine has read from the semaphore.
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}

	return results, cached
}

// Execute loads, groups, and scores the instances of the source. One Group result is sent per head, in order of first
// appearance, followed by a Summary. The channel is closed once the pipeline is Done or has sent an Error.
func (p Pipeline) Execute(c chan pipeline.Result) {
	defer close(c)

	records, err := p.Source.Load()
	if err != nil {
		c <- pipeline.Result{
			Error: err,
			Type:  pipeline.Error,
		}
		return
	}

	groups := record.GroupBy(records)
	log.Printf("scoring %d instances of %d heads with %d goroutines\n", len(records), len(groups), p.Workers)

	results, cached := p.Score(groups)
	for i, r := range results {
		c <- pipeline.Result{
			Index:  i,
			Group:  r,
			Cached: cached[i],
			Type:   pipeline.Group,
		}
	}

	c <- pipeline.Result{
		Summary: eval.Aggregate(results),
		Type:    pipeline.Summary,
	}

	c <- pipeline.Result{
		Type: pipeline.Done,
	}
}
