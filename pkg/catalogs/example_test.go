package catalogs_test

import (
	"fmt"
	"log"

	"github.com/agentstation/bibliotheque/internal/storage"
	"github.com/agentstation/bibliotheque/pkg/catalogs"
)

// Example shows the add, search and remove cycle over an in-memory filesystem.
func Example() {
	store, err := catalogs.New("/bibliotheque.json", catalogs.WithFS(storage.NewMemory()))
	if err != nil {
		log.Fatal(err)
	}

	_ = store.Add(catalogs.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597", PublicationYear: 1965})
	_ = store.Add(catalogs.Book{Title: "1984", Author: "George Orwell", ISBN: "0451524935", PublicationYear: 1949})

	for _, b := range store.SearchByTitle("19") {
		fmt.Println(b.Title)
	}

	if b, ok := store.SearchByISBN("0441013597"); ok {
		fmt.Println(b.Author)
	}

	removed, _ := store.RemoveAt(0)
	fmt.Println(removed.Title, store.Len())

	// Output:
	// 1984
	// Frank Herbert
	// Dune 1
}

// ExampleEncode shows the data file layout.
func ExampleEncode() {
	data, _ := catalogs.Encode([]catalogs.Book{{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597", PublicationYear: 1965}})
	fmt.Println(string(data))

	// Output:
	// [
	//   {
	//     "titre": "Dune",
	//     "auteur": "Frank Herbert",
	//     "isbn": "0441013597",
	//     "annee_publication": 1965
	//   }
	// ]
}
