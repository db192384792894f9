// processor.go - Record replay, filtering and output
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/eco"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/matching"
	"github.com/lgbarn/chesscore-go/internal/replay"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// maxRecordLine bounds one JSON-lines record. PGN-bearing records can be
// far longer than bufio's default token size.
const maxRecordLine = 4 << 20

var errEmptyRecord = fmt.Errorf("record has neither game nor puzzle")

// processor replays records on a worker pool and writes the results from
// a single consumer goroutine. Only the duplicate detector and the
// counters are shared with other goroutines.
type processor struct {
	cfg      *config.Config
	logger   zerolog.Logger
	replayer *replay.Replayer
	matcher  matching.GameMatcher
	detector *hashing.ThreadSafeDuplicateDetector
	openings *eco.Classifier
	out      recordWriter
	dupOut   recordWriter

	records    atomic.Int64
	written    atomic.Int64
	duplicates atomic.Int64
	filtered   atomic.Int64
	failed     atomic.Int64
}

// recordWriter is the part of output.Writer the processor uses.
type recordWriter interface {
	WriteGame(h *replay.History) error
	WritePuzzle(p *replay.Puzzle) error
}

func newProcessor(cfg *config.Config, logger zerolog.Logger, out, dupOut recordWriter) (*processor, error) {
	matcher, err := matching.FromConfig(cfg.Filter)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("filter", matcher.Name()).Msg("filters")

	p := &processor{
		cfg:    cfg,
		logger: logger,
		replayer: replay.New(
			replay.WithLogger(logger),
			replay.WithStrict(cfg.Replay.Strict),
		),
		matcher: matcher,
		out:     out,
		dupOut:  dupOut,
	}
	if cfg.Duplicate.Suppress || dupOut != nil {
		p.enableDuplicates()
	}
	return p, nil
}

func (p *processor) enableDuplicates() {
	if p.detector == nil {
		p.detector = hashing.NewThreadSafeDuplicateDetector(p.cfg.Duplicate.ExactMatch, p.cfg.Duplicate.Capacity)
	}
}

// classifyWith annotates every replayed game with its opening. It must be
// called before run.
func (p *processor) classifyWith(c *eco.Classifier) {
	p.openings = c
}

// seed marks the final positions of records as already seen.
func (p *processor) seed(records []replay.Record) int {
	p.enableDuplicates()
	n := 0
	for _, rec := range records {
		if rec.Game == nil {
			continue
		}
		h, err := p.replayer.Replay(*rec.Game)
		if err != nil {
			p.logger.Warn().Err(err).Str("game", rec.Game.ID).Msg("skipping check record")
			continue
		}
		p.detector.CheckAndAdd(hashing.SignatureOf(h.Final, h.Len()))
		n++
	}
	return n
}

// process runs on a worker goroutine.
func (p *processor) process(job worker.Job) worker.Result {
	res := worker.Result{Record: job.Record, Index: job.Index}
	switch {
	case job.Record.Game != nil:
		res.History, res.Err = p.replayer.Replay(*job.Record.Game)
		if res.Err != nil {
			break
		}
		if p.openings != nil {
			p.openings.Annotate(res.History)
		}
		res.Matched = p.matcher.Match(res.History)
	case job.Record.Puzzle != nil:
		res.Puzzle, res.Err = p.replayer.Puzzle(*job.Record.Puzzle)
		res.Matched = res.Err == nil
	default:
		res.Err = fmt.Errorf("record %d: %w", job.Index+1, errEmptyRecord)
	}
	return res
}

// run replays records and writes them in input order. It returns the
// first write error.
func (p *processor) run(records []replay.Record) error {
	pool := worker.NewPool(p.process,
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(p.cfg.BufferSize),
	)
	pool.Start()

	go func() {
		for i, rec := range records {
			if pool.IsStopped() {
				break
			}
			pool.Submit(worker.Job{Record: rec, Index: i})
		}
		pool.Close()
	}()

	var writeErr error
	worker.InOrder(pool.Results(), func(r worker.Result) {
		if writeErr != nil || p.limitReached() {
			pool.Stop()
			return
		}
		p.records.Add(1)
		if err := p.handle(r); err != nil {
			writeErr = err
			pool.Stop()
		}
	})
	return writeErr
}

func (p *processor) limitReached() bool {
	limit := p.cfg.Filter.StopAfter
	return limit > 0 && p.written.Load() >= int64(limit)
}

// handle writes one result. It runs on the consumer goroutine only.
func (p *processor) handle(r worker.Result) error {
	if r.Err != nil {
		p.failed.Add(1)
		p.logger.Warn().Err(r.Err).Str("record", r.Record.ID()).Int("index", r.Index).Msg("replay failed")
		return nil
	}
	if !r.Matched {
		p.filtered.Add(1)
		return nil
	}

	if r.Puzzle != nil {
		p.written.Add(1)
		return p.out.WritePuzzle(r.Puzzle)
	}

	if p.detector != nil && p.detector.CheckAndAdd(hashing.SignatureOf(r.History.Final, r.History.Len())) {
		p.duplicates.Add(1)
		p.logger.Debug().Str("game", r.History.GameID).Msg("duplicate final position")
		if p.dupOut != nil {
			if err := p.dupOut.WriteGame(r.History); err != nil {
				return err
			}
		}
		if p.cfg.Duplicate.Suppress {
			return nil
		}
	}

	p.written.Add(1)
	return p.out.WriteGame(r.History)
}

// reportProgress logs the counters every interval until done is closed.
func (p *processor) reportProgress(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ev := p.logger.Info().
				Int64("records", p.records.Load()).
				Int64("written", p.written.Load())
			if p.detector != nil {
				ev = ev.Int("unique", p.detector.UniqueCount()).
					Int("duplicates", p.detector.DuplicateCount()).
					Bool("detectorFull", p.detector.IsFull())
			}
			ev.Msg("progress")
		}
	}
}

// report logs the final statistics.
func (p *processor) report() {
	p.logger.Info().
		Int64("records", p.records.Load()).
		Int64("written", p.written.Load()).
		Int64("duplicates", p.duplicates.Load()).
		Int64("filtered", p.filtered.Load()).
		Int64("failed", p.failed.Load()).
		Msg("done")
}

// readRecords decodes JSON-lines records from r. Blank lines and lines
// starting with '#' are skipped. A line without a "game" or "puzzle" key
// is read as a bare game record. Undecodable lines are logged and
// skipped.
func readRecords(r io.Reader, name string, logger zerolog.Logger) ([]replay.Record, error) {
	var records []replay.Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordLine)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := decodeRecord([]byte(line))
		if err != nil {
			logger.Warn().Err(err).Str("file", name).Int("line", lineNum).Msg("skipping record")
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, errors.Wrapf(err, "reading %s", name)
	}
	return records, nil
}

func decodeRecord(data []byte) (replay.Record, error) {
	var rec replay.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, err
	}
	if rec.Game != nil || rec.Puzzle != nil {
		return rec, nil
	}

	var game replay.GameRecord
	if err := json.Unmarshal(data, &game); err != nil {
		return rec, err
	}
	if game.Moves == "" && game.PGN == "" && game.InitialFEN == "" {
		return rec, errEmptyRecord
	}
	rec.Game = &game
	return rec, nil
}
