package shell

import (
	"context"
	"fmt"
)

func (s *Shell) reportMenu(ctx context.Context) {
	fmt.Fprintln(s.out, "\n--- Reports ---")
	fmt.Fprintln(s.out, "1. Show GPA Distribution")
	fmt.Fprintln(s.out, "2. Back to Main Menu")

	choice, ok := s.prompt("Enter your choice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		s.showGPADistribution(ctx)
	case "2":
		return
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Shell) showGPADistribution(ctx context.Context) {
	fmt.Fprintln(s.out, "--- GPA Distribution Report ---")
	buckets := s.svc.Reports.GPADistribution(ctx)
	if len(buckets) == 0 {
		fmt.Fprintln(s.out, "No students found.")
		return
	}
	for _, bucket := range buckets {
		fmt.Fprintf(s.out, "GPA Range %d-%d: %d students\n", bucket.Low, bucket.Low+1, bucket.Count)
	}
}
