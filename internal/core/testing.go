package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/callummcdougall/jupyter-to-anki/internal/testutil"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	configOnce.Reset()
	loggerOnce.Reset()
}

/* Fixtures */

// SetUpProjectFromGoldenNotebook populates a temp directory containing a valid .jta project and the notebook of the current test.
func SetUpProjectFromGoldenNotebook(t *testing.T) string {
	return SetUpProjectFromGoldenNotebookNamed(t, t.Name()+".ipynb")
}

// SetUpProjectFromGoldenNotebookNamed populates a temp directory based on the given notebook.
func SetUpProjectFromGoldenNotebookNamed(t *testing.T, filename string) string {
	path := testutil.SetUpFromGoldenFileNamed(t, filename)
	configureDir(t, filepath.Dir(path))
	return path
}

// SetUpProjectFromGoldenDir populates a temp directory from the project of the current test.
// The directory must exist in testdata/ (ex: testdata/TestBuildFromProject/.jta/config).
func SetUpProjectFromGoldenDir(t *testing.T) string {
	dirname := testutil.SetUpFromGoldenDirNamed(t, t.Name())
	configureDir(t, dirname)
	return dirname
}

// SetUpProjectFromTempDir populates a temp directory containing a valid .jta project.
func SetUpProjectFromTempDir(t *testing.T) string {
	dirname := t.TempDir()
	configureDir(t, dirname)
	return dirname
}

func configureDir(t *testing.T, dirname string) {
	jtaDir := filepath.Join(dirname, ".jta")
	if _, err := os.Stat(jtaDir); os.IsNotExist(err) {
		// Create a default configuration if not exists for CurrentConfig() to work
		if err := os.Mkdir(jtaDir, os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(jtaDir, "config"), []byte(DefaultConfig), os.ModePerm); err != nil {
			t.Fatal(err)
		}
	}
	// Force the application to consider the temporary directory as the home
	t.Setenv("JTA_HOME", dirname)
	t.Cleanup(Reset)

	// Force debug level in tests to diagnose more easily
	CurrentLogger().SetVerboseLevel(VerboseDebug)
	CurrentLogger().Debugf("✨ Set up directory %q", jtaDir)
}
