// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package blob writes export files to a local path, stdout or S3.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdoutTarget selects standard output.
const StdoutTarget = "-"

var ErrInvalidTarget = errors.New("invalid export target")

// Sink stores one object per Put.
type Sink interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
}

// Target is a parsed export destination.
type Target struct {
	Scheme string // "s3", "file" or "stdout"
	Bucket string
	Key    string
}

// ParseTarget accepts "-", "s3://bucket/key" or a file path.
func ParseTarget(raw string) (Target, error) {
	switch {
	case raw == "":
		return Target{}, fmt.Errorf("%w: empty", ErrInvalidTarget)
	case raw == StdoutTarget:
		return Target{Scheme: "stdout"}, nil
	case strings.HasPrefix(raw, "s3://"):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(raw, "s3://"), "/")
		if bucket == "" || key == "" {
			return Target{}, fmt.Errorf("%w: %q needs a bucket and key", ErrInvalidTarget, raw)
		}
		return Target{Scheme: "s3", Bucket: bucket, Key: key}, nil
	default:
		return Target{Scheme: "file", Key: raw}, nil
	}
}

// Open returns the sink for t. S3 sinks read their region and endpoint
// from the environment.
func Open(ctx context.Context, t Target, stdout io.Writer) (Sink, error) {
	switch t.Scheme {
	case "stdout":
		return WriterSink{W: stdout}, nil
	case "file":
		return FileSink{}, nil
	case "s3":
		return OpenS3FromEnv(ctx, t.Bucket)
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidTarget, t.Scheme)
	}
}

// WriterSink copies every object to W and ignores the key.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Put(_ context.Context, _ string, r io.Reader, _ string) error {
	_, err := io.Copy(s.W, r)
	return err
}

// FileSink treats keys as file paths, creating parent directories.
type FileSink struct{}

func (FileSink) Put(_ context.Context, key string, r io.Reader, _ string) error {
	if dir := filepath.Dir(key); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(key)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
