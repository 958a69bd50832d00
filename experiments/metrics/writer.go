package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies an agent taking part in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // minimax, alphabeta, id-minimax, id-alphabeta or random
	Depth    int
	Duration time.Duration
	Ordering bool
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000000000")
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
	header := []string{"id", "kind", "depth", "duration", "ordering"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.FormatBool(config.Ordering),
		})
	}

	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "size", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.Size),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "step", "player", "move", "nodes", "total_nodes", "max_depth",
		"total_max_depth", "completed_depth", "value", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.TotalNodes),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.TotalMaxDepth),
			strconv.Itoa(record.CompletedDepth),
			strconv.Itoa(record.Value),
			record.Duration.String(),
		})
	}

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
