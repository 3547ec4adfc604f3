package scorer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kbptools/sfscore/internal/pkg/logger"
)

// Inputs names the files of one scoring run.
type Inputs struct {
	ResponseFile string
	KeyFile      string

	// SlotsFile is optional; when empty the scored queries are those
	// observed in the response file.
	SlotsFile string
}

// Run executes a full scoring run: load the key, responses, and
// optional slot list; normalize equivalence classes; score. The input
// files load concurrently since they touch disjoint state, but
// normalization and scoring start only after every load has finished,
// so the build/score barrier holds.
func Run(ctx context.Context, in Inputs, policy Policy, log *logger.Logger, trace io.Writer) (*Report, error) {
	// anydoc matching subsumes offset-insensitive matching.
	if policy.AnyDoc {
		policy.IgnoreOffsets = true
	}

	table := NewTable(policy, log)
	responses := NewResponseSet()
	var slotIDs []string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadKeyFile(ctx, in.KeyFile, table, log)
	})
	g.Go(func() error {
		return loadResponseFile(ctx, in.ResponseFile, policy, responses, log)
	})
	if in.SlotsFile != "" {
		g.Go(func() error {
			ids, err := loadSlotList(ctx, in.SlotsFile, log)
			if err != nil {
				return err
			}
			// An empty slot list still overrides the response-derived
			// one.
			if ids == nil {
				ids = []string{}
			}
			slotIDs = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table.Normalize()

	report, err := NewEngine(table, policy, log, trace).Score(responses, slotIDs)
	if err != nil {
		return nil, err
	}
	if in.SlotsFile != "" {
		report.SlotListSource = in.SlotsFile
	}
	return report, nil
}

func loadKeyFile(ctx context.Context, path string, table *Table, log *logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening judgment file: %w", err)
	}
	defer f.Close()

	sc := newLineScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		rec, err := ParseJudgedRecord(line)
		if errors.Is(err, errNILProvenance) {
			continue
		}
		if err != nil {
			log.Warn("invalid line in judgment file", "error", err, "line", line)
			continue
		}
		table.Add(rec)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading judgment file: %w", err)
	}

	log.Info("read judgments", "count", table.Size(), "file", path)
	return nil
}

func loadResponseFile(ctx context.Context, path string, policy Policy, responses *ResponseSet, log *logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening responses file: %w", err)
	}
	defer f.Close()

	sc := newLineScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		resp, err := ParseResponse(line, policy)
		if err != nil {
			log.Warn("invalid line in responses file", "error", err, "line", line)
			continue
		}
		responses.Add(resp)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading responses file: %w", err)
	}

	log.Info("read responses", "slots", responses.Len(), "file", path)
	return nil
}

func loadSlotList(ctx context.Context, path string, log *logger.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening slots file: %w", err)
	}
	defer f.Close()

	var ids []string
	sc := newLineScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading slots file: %w", err)
	}

	log.Info("read slot list", "count", len(ids), "file", path)
	return ids, nil
}

// newLineScanner returns a scanner sized for long assessment lines.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return sc
}
