package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GroupSize is how many records of one compression level fold into one record
// of the next level.
const GroupSize = 100

// GameStats holds every recorded life, single or grouped, and derives the
// session figures shown on the HUD.
type GameStats struct {
	SessionID string
	Games     []GameRecord

	path      string
	groupSize int
	mutex     sync.RWMutex
}

// GameRecord is one life of the snake, or a group of lives when
// CompressionIndex > 0.
type GameRecord struct {
	SessionID        string    `json:"sessionId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	Ticks            int       `json:"ticks"`
	Collision        string    `json:"collision,omitempty"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// NewGameStats creates an empty stats set bound to path. An empty path keeps
// the stats in memory only.
func NewGameStats(path string) *GameStats {
	return &GameStats{
		SessionID: uuid.New().String(),
		Games:     make([]GameRecord, 0),
		path:      path,
		groupSize: GroupSize,
	}
}

// Load creates a stats set and reads any records already stored at path.
// When an existing file cannot be read or decoded the returned set is kept in
// memory only, so saving never overwrites the file.
func Load(path string) (*GameStats, error) {
	s := NewGameStats(path)
	if err := s.loadFromFile(); err != nil {
		s.path = ""
		return s, err
	}
	return s, nil
}

// AddGame records a finished life.
func (s *GameStats) AddGame(score, ticks int, collision string, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		SessionID:       s.SessionID,
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		Ticks:           ticks,
		Collision:       collision,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	})

	s.groupGames()
}

// groupGames folds every full run of groupSize records at one compression
// level into a single record of the next level, cascading upwards.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records, rest []GameRecord
		for _, game := range s.Games {
			if game.CompressionIndex == level {
				records = append(records, game)
			} else {
				rest = append(rest, game)
			}
		}
		if len(records) < s.groupSize {
			break
		}

		var folded []GameRecord
		i := 0
		for ; i+s.groupSize <= len(records); i += s.groupSize {
			folded = append(folded, fold(records[i:i+s.groupSize], level+1))
		}
		folded = append(folded, records[i:]...)
		s.Games = append(rest, folded...)
	}
}

func fold(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		SessionID:        group[0].SessionID,
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	var medians []float64
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		if g.SessionID != out.SessionID {
			out.SessionID = ""
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.Ticks += g.Ticks
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(medians)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// GetStats returns a copy of the current records.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var total float64
	var games int
	for _, game := range s.Games {
		total += game.AverageScore * float64(game.GamesCount)
		games += game.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

// GetMedianScore weights each record's median by the games it covers.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var scores []float64
	for _, game := range s.Games {
		for i := 0; i < game.GamesCount; i++ {
			scores = append(scores, game.MedianScore)
		}
	}
	return median(scores)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, game := range s.Games {
		best = max(best, game.MaxScore)
	}
	return best
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.GamesCount
	}
	return total
}

// GetAverageDuration returns the mean life length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var total float64
	var games int
	for _, game := range s.Games {
		total += game.AverageDuration * float64(game.GamesCount)
		games += game.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (s *GameStats) GetMaxDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var longest float64
	for _, game := range s.Games {
		longest = max(longest, game.MaxDuration)
	}
	return longest
}

// SaveToFile writes the records as JSON. It is a no-op without a path.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	data, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read stats file: %w", err)
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return fmt.Errorf("decode stats file %s: %w", s.path, err)
	}
	s.Games = games
	return nil
}
