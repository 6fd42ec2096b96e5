package iochunks

import (
	"io/fs"
	"runtime"

	"github.com/sirupsen/logrus"
)

type ExtractionOptions struct {
	Logger     *logrus.Logger //Where the verbose log goes. Defaults to logrus' standard logger.
	Verbose    bool           //Logs each region and any errors.
	Decompress bool           //Decompress regions that have a compression set.
	Perm       fs.FileMode    //Permission of the extracted files. 0 means 0644.
	FolderPerm fs.FileMode    //Permission of the output folder if it's created. 0 means 0755.
	Routines   int            //The number of regions extracted at once. Each one opens the file separately.
}

// The default extraction options. Uses half of your CPU cores.
func DefaultOptions() *ExtractionOptions {
	return &ExtractionOptions{
		Perm:       0644,
		FolderPerm: 0755,
		Decompress: true,
		Routines:   max(runtime.NumCPU()/2, 1),
	}
}

// Faster extraction option. Uses all CPU cores.
func FastOptions() *ExtractionOptions {
	op := DefaultOptions()
	op.Routines = runtime.NumCPU()
	return op
}

func (op *ExtractionOptions) log() logrus.FieldLogger {
	if op.Logger != nil {
		return op.Logger
	}
	return logrus.StandardLogger()
}
