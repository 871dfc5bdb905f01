package util

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// VersionFunc is a type of function that return
// string with current Forge CLI version.
type VersionFunc func(bool, bool) string

// InternalError shows error information, version of forge and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of Forge CLI.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// GetFileContentBytes returns file content as a bytes slice.
func GetFileContentBytes(path string) ([]byte, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

// ParseYAML parse yaml file at specified path.
func ParseYAML(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// GetHomeDir returns current home directory.
func GetHomeDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file exists
// and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// IsDirEmpty returns true if the directory contains no entries.
// A non-existent directory is reported as empty.
func IsDirEmpty(dirPath string) bool {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return true
	}

	return len(entries) == 0
}

// CreateDirectory create a directory with existence and error checks.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	if dirName == "" {
		return fmt.Errorf("unable to create directory: empty path")
	}

	if err := os.MkdirAll(dirName, fileMode); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dirName, err)
	}

	return nil
}

// RunCommandAndGetOutput returns output of command.
func RunCommandAndGetOutput(program string, args ...string) (string, error) {
	out, err := exec.Command(program, args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// getMissedBinaries returns list of binaries not found in PATH.
func getMissedBinaries(binaries ...string) []string {
	var missedBinaries []string

	for _, binary := range binaries {
		if _, err := exec.LookPath(binary); err != nil {
			missedBinaries = append(missedBinaries, binary)
		}
	}

	return missedBinaries
}

// CheckRecommendedBinaries warns if some binaries not found in PATH.
func CheckRecommendedBinaries(binaries ...string) {
	missedBinaries := getMissedBinaries(binaries...)

	if len(missedBinaries) > 0 {
		log.Warnf("Missed recommended binaries %s", strings.Join(missedBinaries, ", "))
	}
}

// RelativeToCurrentWorkingDir returns a path relative to current working dir.
// In case of error, fullpath is returned.
func RelativeToCurrentWorkingDir(fullpath string) string {
	curDir, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(curDir, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

// HandleCmdErr handles an error returned by command implementation.
// If received error is of an ArgError type, usage help is printed.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err != nil {
		var argError *ArgError
		if errors.As(err, &argError) {
			log.Error(argError.Error())
			cmd.Usage()
			os.Exit(1)
		}
		log.Fatalf(err.Error())
	}
}
