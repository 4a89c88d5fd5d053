package textaccel_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/textaccel"
)

// Example_search demonstrates first-occurrence substring search.
func Example_search() {
	engine := textaccel.New()

	fmt.Println(engine.Search([]byte("hello world"), []byte("world")))
	fmt.Println(engine.Search([]byte("aaaa"), []byte("aa")))
	fmt.Println(engine.Search([]byte("abc"), []byte("")))
	fmt.Println(engine.Search([]byte("abc"), []byte("abcd")))
	// Output:
	// 6
	// 0
	// 0
	// -1
}

// Example_readFile demonstrates whole-file reading.
func Example_readFile() {
	path := filepath.Join(os.TempDir(), "textaccel_example.txt")
	if err := os.WriteFile(path, []byte("line1\nline2\n"), 0o644); err != nil {
		log.Fatal(err)
	}
	defer os.Remove(path)

	engine := textaccel.New()
	data, err := engine.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%q\n", data)
	// Output: "line1\nline2\n"
}
