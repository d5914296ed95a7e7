// Package game holds the guessing games and the rock-paper-scissors match.
// Games read through a prompt.Prompter and write feedback to an io.Writer.
package game

import (
	"fmt"
	"io"
)

// Session records how many attempts each solved round took.
type Session struct {
	attempts []int
}

func (s *Session) Record(attempts int) { s.attempts = append(s.attempts, attempts) }

type Stats struct {
	Games   int
	Best    int
	Worst   int
	Average float64
}

// Stats returns zero Stats when no round has been recorded.
func (s *Session) Stats() Stats {
	if len(s.attempts) == 0 {
		return Stats{}
	}
	st := Stats{Games: len(s.attempts), Best: s.attempts[0], Worst: s.attempts[0]}
	total := 0
	for _, a := range s.attempts {
		st.Best = min(st.Best, a)
		st.Worst = max(st.Worst, a)
		total += a
	}
	st.Average = float64(total) / float64(len(s.attempts))
	return st
}

// WriteSummary prints the session statistics, or nothing for an empty session.
func (s *Session) WriteSummary(w io.Writer) {
	st := s.Stats()
	if st.Games == 0 {
		return
	}
	fmt.Fprintln(w, "\nStatistics:")
	fmt.Fprintf(w, "Games played: %d\n", st.Games)
	fmt.Fprintf(w, "Best result: %d attempts\n", st.Best)
	fmt.Fprintf(w, "Worst result: %d attempts\n", st.Worst)
	fmt.Fprintf(w, "Average result: %.1f attempts\n", st.Average)
}
