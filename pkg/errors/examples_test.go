package errors_test

import (
	"fmt"

	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "book",
		ID:       "978-0451524935",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Book not found")
	}

	// Output: Book not found
}

// Example_indexError shows how a front end reports a bad removal position.
func Example_indexError() {
	err := errors.NewIndexError(4, 2)

	if errors.IsInvalidIndex(err) {
		fmt.Println(err)
	}

	// Output: invalid index 4: must be between 0 and 1
}

// Example_writeFailure shows how a failed flush is classified.
func Example_writeFailure() {
	err := errors.WrapIO("write", "bibliotheque.json", errors.New("read-only file system"))

	switch {
	case errors.IsWriteFailure(err):
		fmt.Println("could not save catalog")
	case errors.IsReadFailure(err):
		fmt.Println("could not read catalog")
	}

	// Output: could not save catalog
}

// Example_parseFailure shows the message produced for a corrupt data file.
func Example_parseFailure() {
	err := errors.WrapParse("json", "bibliotheque.json", errors.New("expected array"))

	fmt.Println(errors.IsParseFailure(err))
	fmt.Println(err)

	// Output:
	// true
	// parse error in json file bibliotheque.json: expected array
}
