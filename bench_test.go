package vlseq

import "testing"

func BenchmarkPushBackInline(b *testing.B) {
	s, err := New[int](Config{})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < DefaultInlineCap; v++ {
			s.PushBack(v)
		}
		s.Clear()
	}
}

func BenchmarkPushBackSpilled(b *testing.B) {
	s, err := New[int](Config{InlineCap: 4})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < 64; v++ {
			s.PushBack(v)
		}
		s.Clear()
	}
}

func BenchmarkInsertFront(b *testing.B) {
	s, err := New[int](Config{InlineCap: 4})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < 32; v++ {
			if err := s.Insert(0, v); err != nil {
				b.Fatal(err)
			}
		}
		s.Clear()
	}
}

func BenchmarkEraseShrink(b *testing.B) {
	proto, err := NewFill(Config{InlineCap: 4}, 32, 7)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := proto.Clone()
		if err := s.Erase(0, 30); err != nil {
			b.Fatal(err)
		}
	}
}
