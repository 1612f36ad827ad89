package main

import (
	"errors"
	"fmt"

	"github.com/trezcool/matokeo/core/student"
)

// addResult records a result. An unknown student is only a warning: the command still succeeds.
func (cli *commandLine) addResult(name, roll, subject string, marks int) error {
	_, err := cli.svc.AddResult(student.NewResult{
		Name:       name,
		RollNumber: roll,
		Subject:    subject,
		Marks:      &marks,
	})
	if err != nil {
		var nfErr *student.NotFoundError
		if errors.As(err, &nfErr) {
			fmt.Fprintf(cli.out, "Warning: %s\n", nfErr.Error())
			if nfErr.Suggestion != "" {
				fmt.Fprintf(cli.out, "Did you mean %q?\n", nfErr.Suggestion)
			}
			return nil
		}
		return cli.userError(err)
	}
	fmt.Fprintf(cli.out, "Result for %s added successfully!\n", subject)
	return nil
}
