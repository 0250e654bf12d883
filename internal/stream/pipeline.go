// Package stream composes producer, transform and consumer stages into a
// pipeline that is fully drained before it returns.
package stream

import (
	"io"

	"golang.org/x/sync/errgroup"
)

// Stage reads everything from src and writes its output to dst.
type Stage func(dst io.Writer, src io.Reader) error

// Pipeline copies src into dst through stages. Adjacent stages are connected
// with in-memory pipes; Pipeline returns once every stage has finished and
// reports the first error any of them produced.
func Pipeline(src io.Reader, dst io.Writer, stages ...Stage) error {
	if len(stages) == 0 {
		_, err := io.Copy(dst, src)
		return err
	}

	var group errgroup.Group
	in := src

	for i, stage := range stages {
		stageIn := in
		var stageOut io.Writer = dst
		var pipeOut *io.PipeWriter

		if i < len(stages)-1 {
			pr, pw := io.Pipe()
			stageOut, pipeOut, in = pw, pw, pr
		}

		group.Go(func() error {
			err := stage(stageOut, stageIn)
			if pipeOut != nil {
				// Unblocks the downstream reader, with err when the stage failed.
				pipeOut.CloseWithError(err)
			}
			if pr, ok := stageIn.(*io.PipeReader); ok {
				if err != nil {
					pr.CloseWithError(err)
				} else {
					// The upstream stage must not block on output nobody reads.
					_, _ = io.Copy(io.Discard, pr)
				}
			}
			return err
		})
	}

	return group.Wait()
}

// Copy is the identity stage.
func Copy() Stage {
	return func(dst io.Writer, src io.Reader) error {
		_, err := io.Copy(dst, src)
		return err
	}
}

// Encode builds a stage from a writer wrapper such as a compressor.
func Encode(wrap func(io.Writer) (io.WriteCloser, error)) Stage {
	return func(dst io.Writer, src io.Reader) error {
		w, err := wrap(dst)
		if err != nil {
			return err
		}

		if _, err := io.Copy(w, src); err != nil {
			w.Close()
			return err
		}

		return w.Close()
	}
}

// Decode builds a stage from a reader wrapper such as a decompressor.
func Decode(wrap func(io.Reader) (io.ReadCloser, error)) Stage {
	return func(dst io.Writer, src io.Reader) error {
		r, err := wrap(src)
		if err != nil {
			return err
		}
		defer r.Close()

		_, err = io.Copy(dst, r)
		return err
	}
}
