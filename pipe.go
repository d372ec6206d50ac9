package bipgo

import (
	"io"
	"log/slog"
	"sync"
)

var (
	_ io.Reader     = (*PipeReader)(nil)
	_ io.WriterTo   = (*PipeReader)(nil)
	_ io.Closer     = (*PipeReader)(nil)
	_ io.Writer     = (*PipeWriter)(nil)
	_ io.ReaderFrom = (*PipeWriter)(nil)
	_ io.Closer     = (*PipeWriter)(nil)
)

// pipe is the shared state behind a PipeReader/PipeWriter pair. It owns a
// byte Bip-Buffer and guards it with a single mutex; the buffer itself stays
// free of synchronization. Writers stage data with Reserve/Commit so bytes
// land in the backing store directly, and readers drain contiguous regions
// with Read/Decommit.
type pipe struct {
	mu         sync.Mutex
	readerWait sync.Cond
	writerWait sync.Cond

	buf    *BipBuffer[byte]
	logger *slog.Logger

	readerClosed bool
	writerClosed bool
	readerErr    error // set by CloseWithError on the reader side
	writerErr    error // set by CloseWithError on the writer side
}

// PipeOption configures a pipe created by Pipe.
type PipeOption func(*pipe)

// WithPipeLogger configures structured debug logging for pipe lifecycle
// events (closes, close-with-error). If l is nil, logging is disabled.
func WithPipeLogger(l *slog.Logger) PipeOption {
	return func(p *pipe) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		p.logger = l
	}
}

// Pipe creates a synchronized in-memory pipe buffered by a Bip-Buffer of the
// given size. It mirrors io.Pipe semantics while giving bursty producers a
// cushion: writes complete without blocking until the buffer fills, and
// reads always drain one contiguous region per call.
//
// Closing the writer lets the reader drain buffered data before seeing
// io.EOF. Closing the reader causes subsequent writes to fail with
// io.ErrClosedPipe. CloseWithError on either side replaces those defaults.
func Pipe(size int, opts ...PipeOption) (*PipeReader, *PipeWriter) {
	if size <= 0 {
		size = 1
	}

	p := &pipe{
		buf:    New[byte](size),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.readerWait.L = &p.mu
	p.writerWait.L = &p.mu

	for _, opt := range opts {
		opt(p)
	}

	return &PipeReader{p}, &PipeWriter{p}
}

func (p *pipe) read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.waitReadableLocked(); err != nil {
		return 0, err
	}

	region, err := p.buf.Read()
	if err != nil {
		// Unreachable: waitReadableLocked only returns nil with data present.
		return 0, err
	}

	n := copy(b, region)
	p.buf.Decommit(n)
	p.writerWait.Signal()

	return n, nil
}

func (p *pipe) write(b []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(b) > 0 {
		if err := p.waitWritableLocked(); err != nil {
			return n, err
		}

		// The grant may be shorter than the remaining input when the free
		// region is small; the loop reserves again for the rest.
		region, err := p.buf.Reserve(len(b))
		if err != nil {
			p.writerWait.Wait()
			continue
		}

		wrote := copy(region, b)
		p.buf.Commit(wrote)
		b = b[wrote:]
		n += wrote

		p.readerWait.Signal()
	}

	return n, nil
}

// waitReadableLocked blocks until committed data is available or the pipe is
// closed. Buffered data is always drained before a close is surfaced.
func (p *pipe) waitReadableLocked() error {
	for {
		if p.buf.CommittedLen() > 0 {
			return nil
		}
		if p.readerClosed {
			if p.readerErr != nil {
				return p.readerErr
			}
			return io.ErrClosedPipe
		}
		if p.writerClosed {
			if p.writerErr != nil {
				return p.writerErr
			}
			return io.EOF
		}
		p.readerWait.Wait()
	}
}

func (p *pipe) waitWritableLocked() error {
	for {
		if p.readerClosed {
			if p.readerErr != nil {
				return p.readerErr
			}
			return io.ErrClosedPipe
		}
		if p.writerClosed {
			return io.ErrClosedPipe
		}
		// Writable means Reserve would grant, not merely committed below
		// capacity: a wrapped commit can strand tail slots that are not
		// reservable until the reader drains region A.
		if _, free := p.buf.nextFree(); free > 0 {
			return nil
		}
		p.writerWait.Wait()
	}
}

func (p *pipe) closeReaderLocked(err error, withErr bool) {
	p.readerClosed = true
	if withErr && p.readerErr == nil {
		if err == nil {
			err = io.ErrClosedPipe
		}
		p.readerErr = err
	}
	p.logger.Debug("pipe reader closed", "error", p.readerErr)
	p.readerWait.Broadcast()
	p.writerWait.Broadcast()
}

func (p *pipe) closeWriterLocked(err error, withErr bool) {
	p.writerClosed = true
	if withErr && p.writerErr == nil {
		if err == nil {
			err = io.EOF
		}
		p.writerErr = err
	}
	p.logger.Debug("pipe writer closed", "error", p.writerErr)
	p.readerWait.Broadcast()
	p.writerWait.Broadcast()
}

// PipeReader is the read half of a pipe.
type PipeReader struct {
	p *pipe
}

// Read implements io.Reader. It blocks until data is available, the writer
// closes, or the reader itself is closed.
func (r *PipeReader) Read(b []byte) (int, error) {
	return r.p.read(b)
}

// WriteTo implements io.WriterTo by draining the pipe into w until EOF or an
// error occurs.
func (r *PipeReader) WriteTo(w io.Writer) (int64, error) {
	return drain(r.Read, w.Write)
}

// Close closes the reader side of the pipe. Subsequent writes fail with
// io.ErrClosedPipe.
func (r *PipeReader) Close() error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	r.p.closeReaderLocked(nil, false)
	return nil
}

// CloseWithError closes the reader side of the pipe; err is returned to
// future writes on the writer side.
func (r *PipeReader) CloseWithError(err error) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	r.p.closeReaderLocked(err, true)
	return nil
}

// PipeWriter is the write half of a pipe.
type PipeWriter struct {
	p *pipe
}

// Write implements io.Writer. It blocks until all of b is buffered or the
// pipe is closed.
func (w *PipeWriter) Write(b []byte) (int, error) {
	return w.p.write(b)
}

// ReadFrom implements io.ReaderFrom by buffering data from r into the pipe
// until EOF or an error occurs.
func (w *PipeWriter) ReadFrom(r io.Reader) (int64, error) {
	return drain(r.Read, w.Write)
}

// Close closes the writer side of the pipe. The reader drains any buffered
// data and then sees io.EOF.
func (w *PipeWriter) Close() error {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.closeWriterLocked(nil, false)
	return nil
}

// CloseWithError closes the writer side of the pipe; err is returned to
// future reads on the reader side once buffered data is drained.
func (w *PipeWriter) CloseWithError(err error) error {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.closeWriterLocked(err, true)
	return nil
}

// drain pumps data from read to write through a staging buffer until read
// reports EOF or either side fails.
func drain(read, write func([]byte) (int, error)) (int64, error) {
	buf := make([]byte, 32*1024)

	var total int64
	for {
		n, rerr := read(buf)
		if n > 0 {
			wn, werr := write(buf[:n])
			if wn < 0 || wn > n {
				wn = 0
				if werr == nil {
					werr = io.ErrShortWrite
				}
			}
			total += int64(wn)
			if werr != nil {
				return total, werr
			}
			if wn != n {
				return total, io.ErrShortWrite
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return total, nil
			}
			return total, rerr
		}
	}
}
