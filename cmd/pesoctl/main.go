// Command pesoctl is the operator tool for exam attempts: list an exam's
// attempts and recalculate a score from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/lshigami/pesomatch/config"
	"github.com/lshigami/pesomatch/database"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/logger"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/lshigami/pesomatch/internal/service"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const usage = `Usage:
  pesoctl attempts --exam ID      list the attempts of an exam
  pesoctl recalc --attempt ID     recalculate an attempt score
`

var errUsage = errors.New("invalid usage")

func main() {
	logger.Init("warn", "console")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	grading := service.NewGradingService(
		repository.NewExamRepository(db),
		repository.NewExamAttemptRepository(db),
		repository.NewExamAnswerRepository(db),
		db,
	)

	if err := run(os.Args[1:], grading, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string, grading service.GradingService, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "attempts":
		fs := pflag.NewFlagSet("attempts", pflag.ContinueOnError)
		examID := fs.Uint("exam", 0, "exam id")
		if err := fs.Parse(args[1:]); err != nil || *examID == 0 {
			return errUsage
		}
		attempts, err := grading.ListAttemptsForExam(*examID)
		if err != nil {
			return err
		}
		printAttempts(out, *examID, attempts)
		return nil
	case "recalc":
		fs := pflag.NewFlagSet("recalc", pflag.ContinueOnError)
		attemptID := fs.Uint("attempt", 0, "attempt id")
		if err := fs.Parse(args[1:]); err != nil || *attemptID == 0 {
			return errUsage
		}
		summary, err := grading.RecalculateScore(*attemptID)
		if err != nil {
			return err
		}
		printSummary(out, *attemptID, summary)
		return nil
	}
	return errUsage
}

func printAttempts(out io.Writer, examID uint, attempts []dto.AttemptSummaryDTO) {
	fmt.Fprintln(out, color.YellowString("Attempts for exam %d", examID))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Attempt", "Candidate", "Job", "Submitted", "Score", "Status"})
	for _, a := range attempts {
		table.Append([]string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.CandidateID.String(),
			strconv.FormatUint(uint64(a.JobID), 10),
			a.SubmittedAt.Format("2006-01-02 15:04"),
			formatScore(a.Score),
			statusColor(a.Status),
		})
	}
	table.Render()
}

func printSummary(out io.Writer, attemptID uint, s *dto.ScoreSummaryDTO) {
	fmt.Fprintln(out, color.YellowString("Attempt %d recalculated", attemptID))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Score", "Questions", "Correct", "Ungraded"})
	table.Append([]string{
		formatScore(s.NewScore),
		strconv.Itoa(s.TotalQuestions),
		strconv.Itoa(s.CorrectCount),
		strconv.Itoa(s.UngradedCount),
	})
	table.Render()
}

func formatScore(score *float64) string {
	if score == nil {
		return "pending"
	}
	return strconv.FormatFloat(*score, 'f', 2, 64)
}

func statusColor(status string) string {
	if status == "graded" {
		return color.GreenString(status)
	}
	return color.YellowString(status)
}
