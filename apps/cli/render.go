package main

import (
	"fmt"

	"github.com/trezcool/matokeo/core/student"
)

// render prints one block per student on a terminal, and tab-separated rows otherwise.
func (cli *commandLine) render(summaries []student.Summary) {
	if !cli.isTerminal() {
		cli.renderTSV(summaries)
		return
	}
	for _, sm := range summaries {
		fmt.Fprintf(cli.out, "%s (Roll No: %s)\n", sm.Name, sm.RollNumber)
		fmt.Fprintf(cli.out, "Total Marks: %d / %d\n", sm.TotalMarks, sm.MaxMarks)
		fmt.Fprintf(cli.out, "Percentage: %.2f%%\n", sm.Percentage)
		fmt.Fprintf(cli.out, "Grade: %s\n", sm.Grade)
		fmt.Fprintln(cli.out, "Results:")
		for _, subject := range sm.Subjects() {
			fmt.Fprintf(cli.out, "  - %s: %d marks\n", subject, sm.Results[subject])
		}
		fmt.Fprintln(cli.out)
	}
}

func (cli *commandLine) renderTSV(summaries []student.Summary) {
	fmt.Fprintln(cli.out, "name\troll_number\ttotal_marks\tmax_marks\tpercentage\tgrade")
	for _, sm := range summaries {
		fmt.Fprintf(cli.out, "%s\t%s\t%d\t%d\t%.2f\t%s\n", sm.Name, sm.RollNumber, sm.TotalMarks, sm.MaxMarks, sm.Percentage, sm.Grade)
	}
}
