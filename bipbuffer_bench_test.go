package bipgo

import (
	"io"
	"testing"
)

func BenchmarkReserveCommitDecommit(b *testing.B) {
	buf := New[byte](4096)

	b.ReportAllocs()
	b.SetBytes(512)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		region, err := buf.Reserve(512)
		if err != nil {
			b.Fatal(err)
		}
		buf.Commit(len(region))
		buf.Decommit(len(region))
	}
}

func BenchmarkRead(b *testing.B) {
	buf := New[byte](4096)

	region, err := buf.Reserve(4096)
	if err != nil {
		b.Fatal(err)
	}
	buf.Commit(len(region))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := buf.Read(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPipeThroughput(b *testing.B) {
	const chunk = 32 * 1024

	pr, pw := Pipe(64 * 1024)
	payload := make([]byte, chunk)

	go func() {
		_, _ = io.Copy(io.Discard, pr)
	}()

	b.ReportAllocs()
	b.SetBytes(chunk)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := pw.Write(payload); err != nil {
			b.Fatal(err)
		}
	}

	b.StopTimer()
	_ = pw.Close()
}
