package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
	"github.com/otiai10/copy"
)

// SetUpFromGoldenNotebook copies the notebook of the current test into a temp directory.
// The notebook must exist in directory testdata/ (ex: testdata/TestBuild.ipynb).
func SetUpFromGoldenNotebook(t *testing.T) string {
	return SetUpFromGoldenFileNamed(t, t.Name()+".ipynb")
}

// SetUpFromGoldenFileNamed creates a temp file based on the given golden file name.
// Generated files (ex: exported decks) are written next to it and removed with the temp directory.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	dir := t.TempDir()

	fileIn := filepath.Join("testdata", filename)
	fileOut := filepath.Join(dir, filepath.Base(filename))
	if err := copy.Copy(fileIn, fileOut); err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// SetUpFromGoldenDirNamed copies a whole directory under testdata/ into a temp directory.
// Useful for tests requiring a project (ex: a .jta/config next to notebooks).
func SetUpFromGoldenDirNamed(t *testing.T, dirname string) string {
	dir := t.TempDir()

	dirIn := filepath.Join("testdata", dirname)
	if err := copy.Copy(dirIn, dir); err != nil {
		t.Fatal(err)
	}

	return dir
}

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	err := os.WriteFile(fileOut, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

// GoldenLines reads the lines of the given golden file without the trailing newline.
func GoldenLines(t *testing.T, filename string) []string {
	return text.SplitLines(string(GoldenFileNamed(t, filename)))
}
