package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID        int           `yaml:"id"`
	Kind      string        `yaml:"kind"` // minimax, alphabeta or random
	Depth     int           `yaml:"depth"`
	MaxDepth  int           `yaml:"max_depth"`
	Evaluator string        `yaml:"evaluator"`
	Timeout   time.Duration `yaml:"timeout"`
	Seed      uint64        `yaml:"seed"`
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Player1
	Agent2 int // AgentConfig.ID playing Player2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for the experiment under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "max_depth", "evaluator", "timeout", "seed"}
	rows := lo.Map(configs, func(config AgentConfig, _ int) []string {
		return []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.MaxDepth),
			config.Evaluator,
			config.Timeout.String(),
			strconv.FormatUint(config.Seed, 10),
		}
	})
	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "forfeit", "start_time", "end_time", "duration", "total_moves"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.FormatBool(record.Forfeit),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	})
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "depth", "nodes", "forecasts", "evaluations", "cutoffs", "timed_out"}
	rows := lo.Map(records, func(record MoveRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			record.Duration.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Forecasts),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatBool(record.TimedOut),
		}
	})
	if err := w.write("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
