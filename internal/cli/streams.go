package cli

import (
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/rwx-research/fm-cli/internal/digest"
	"github.com/rwx-research/fm-cli/internal/errors"
	"github.com/rwx-research/fm-cli/internal/stream"
)

func (e *Engine) hash(args []string) error {
	source := e.resolve(args[0])

	if err := e.requireRegularFile(source); err != nil {
		return err
	}

	h, err := digest.New(e.Digest)
	if err != nil {
		return err
	}

	if err := e.withIndicator(" Hashing...", func() error { return e.digestFile(source, h) }); err != nil {
		return err
	}

	fmt.Fprintln(e.Stdout, hex.EncodeToString(h.Sum(nil)))
	return nil
}

func (e *Engine) digestFile(source string, h hash.Hash) error {
	in, err := e.FileSystem.Open(source)
	if err != nil {
		return errors.Wrapf(err, "unable to open %q", source)
	}
	defer in.Close()

	if err := stream.Pipeline(in, h, stream.Copy()); err != nil {
		return errors.Wrapf(err, "unable to read %q", source)
	}

	return nil
}

func (e *Engine) compress(args []string) error {
	source, target, err := e.streamTargets(args)
	if err != nil {
		return err
	}

	return e.withIndicator(" Compressing...", func() error {
		return e.transform(source, target, stream.Encode(e.Codec.Compress))
	})
}

func (e *Engine) decompress(args []string) error {
	source, target, err := e.streamTargets(args)
	if err != nil {
		return err
	}

	return e.withIndicator(" Decompressing...", func() error {
		return e.transform(source, target, stream.Decode(e.Codec.Decompress))
	})
}

func (e *Engine) streamTargets(args []string) (string, string, error) {
	source := e.resolve(args[0])
	target := e.resolve(args[1])

	if err := e.requireRegularFile(source); err != nil {
		return "", "", err
	}

	if err := e.requireDistinct(source, target); err != nil {
		return "", "", err
	}

	return source, target, nil
}
