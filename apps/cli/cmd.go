package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
)

const orderUsage = "Comma separated fields to sort by, prefix with - for descending (name, roll_number, total_marks, percentage)."

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc        *student.Service
	translator ut.Translator
	out        io.Writer
}

func newCommandLine(svc *student.Service, translator ut.Translator, out io.Writer) *commandLine {
	return &commandLine{svc: svc, translator: translator, out: out}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  add-student -name NAME -roll ROLL_NUMBER - register a new student")
	fmt.Fprintln(cli.out, "  add-result (-name NAME | -roll ROLL_NUMBER) -subject SUBJECT -marks MARKS - record a subject's marks")
	fmt.Fprintln(cli.out, "  list [-order FIELDS] - show all students and results")
	fmt.Fprintln(cli.out, "  search -q NAME [-order FIELDS] - show students whose name contains NAME")
	fmt.Fprintln(cli.out, "  names - list student names")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addStudentCmd := cli.newFlagSet("add-student")
	addStudentName := addStudentCmd.String("name", "", "The student's name.")
	addStudentRoll := addStudentCmd.String("roll", "", "The student's roll number.")

	addResultCmd := cli.newFlagSet("add-result")
	addResultName := addResultCmd.String("name", "", "The student's exact name.")
	addResultRoll := addResultCmd.String("roll", "", "The student's roll number. With -name, both must designate the same student.")
	addResultSubject := addResultCmd.String("subject", "", "The subject name.")
	addResultMarks := addResultCmd.Int("marks", 0, "The marks obtained, from 0 to 100.")

	listCmd := cli.newFlagSet("list")
	listOrder := listCmd.String("order", "", orderUsage)

	searchCmd := cli.newFlagSet("search")
	searchQuery := searchCmd.String("q", "", "Part of the student's name (case-insensitive).")
	searchOrder := searchCmd.String("order", "", orderUsage)

	switch args[1] {
	case "add-student":
		if err := addStudentCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *addStudentName == "" || *addStudentRoll == "" {
			addStudentCmd.Usage()
			return errHelp
		}
		return cli.addStudent(*addStudentName, *addStudentRoll)
	case "add-result":
		if err := addResultCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		// out of range marks are left to the input validation
		if (*addResultName == "" && *addResultRoll == "") || *addResultSubject == "" || !isFlagSet(addResultCmd, "marks") {
			addResultCmd.Usage()
			return errHelp
		}
		return cli.addResult(*addResultName, *addResultRoll, *addResultSubject, *addResultMarks)
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.renderOrdered(cli.svc.List(), *listOrder)
	case "search":
		if err := searchCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *searchQuery == "" {
			searchCmd.Usage()
			return errHelp
		}
		return cli.renderOrdered(cli.svc.Search(*searchQuery), *searchOrder)
	case "names":
		for _, name := range cli.svc.Names() {
			fmt.Fprintln(cli.out, name)
		}
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) renderOrdered(summaries []student.Summary, order string) error {
	orderings := core.ParseOrderings(order)
	if err := student.ValidateOrderings(orderings); err != nil {
		return err
	}
	student.Sort(summaries, orderings)
	cli.render(summaries)
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// userError turns validation errors into a readable message, other errors are returned as is.
func (cli *commandLine) userError(err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return fmt.Errorf("invalid input: %v", core.TranslateErrors(vErrs, cli.translator))
	}
	return err
}

func (cli *commandLine) isTerminal() bool {
	fd := -1
	if f, ok := cli.out.(interface{ Fd() uintptr }); ok {
		fd = int(f.Fd())
	}
	return isTerminalFunc(fd)
}
