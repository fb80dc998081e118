/*
Package command defines the closed set of commands understood by the
directory interpreter.
*/
package command

// Command is one parsed line of user input. The set of implementations is
// closed: Add, ListDepartment, ListAll, Exit and Invalid.
type Command interface {
	isCommand()
}

// Add files Name under Department.
type Add struct {
	Name       string
	Department string
}

// ListDepartment prints the employees of a single department.
type ListDepartment struct {
	Department string
}

// ListAll prints every department with its employees.
type ListAll struct{}

// Exit stops the interpreter.
type Exit struct{}

// Invalid is any line that matches none of the recognized shapes.
type Invalid struct{}

func (Add) isCommand()            {}
func (ListDepartment) isCommand() {}
func (ListAll) isCommand()        {}
func (Exit) isCommand()           {}
func (Invalid) isCommand()        {}
