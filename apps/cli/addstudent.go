package main

import (
	"fmt"

	"github.com/trezcool/matokeo/core/student"
)

func (cli *commandLine) addStudent(name, roll string) error {
	sm, err := cli.svc.AddStudent(student.NewStudent{Name: name, RollNumber: roll})
	if err != nil {
		return cli.userError(err)
	}
	fmt.Fprintf(cli.out, "Student %s added successfully!\n", sm.Name)
	return nil
}
