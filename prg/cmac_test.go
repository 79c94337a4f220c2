package prg

import (
	"bytes"
	"testing"
)

func TestCmacAES128Properties(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}

	empty, err := cmacAES128(key, nil)
	if err != nil {
		t.Fatalf("cmac over empty message: %v", err)
	}
	if len(empty) != blockSize {
		t.Fatalf("cmac output length = %d, want %d", len(empty), blockSize)
	}

	oneBlock, err := cmacAES128(key, bytes.Repeat([]byte{0x42}, blockSize))
	if err != nil {
		t.Fatalf("cmac over one block: %v", err)
	}
	if bytes.Equal(empty, oneBlock) {
		t.Fatalf("cmac of distinct messages collided")
	}

	multiBlock, err := cmacAES128(key, bytes.Repeat([]byte{0x42}, 3*blockSize+5))
	if err != nil {
		t.Fatalf("cmac over multi-block unaligned message: %v", err)
	}
	if len(multiBlock) != blockSize {
		t.Fatalf("cmac output length = %d, want %d", len(multiBlock), blockSize)
	}

	again, err := cmacAES128(key, bytes.Repeat([]byte{0x42}, 3*blockSize+5))
	if err != nil {
		t.Fatalf("cmac recompute: %v", err)
	}
	if !bytes.Equal(multiBlock, again) {
		t.Fatalf("cmac is not deterministic")
	}
}

func FuzzCmacAES128Deterministic(f *testing.F) {
	f.Add(make([]byte, 16), []byte("hello"))
	f.Add(make([]byte, 16), []byte{})
	f.Add(make([]byte, 16), bytes.Repeat([]byte{1}, 33))

	f.Fuzz(func(t *testing.T, keySeed, message []byte) {
		key := make([]byte, 16)
		copy(key, keySeed)

		a, err := cmacAES128(key, message)
		if err != nil {
			t.Skip()
		}
		b, err := cmacAES128(key, message)
		if err != nil || !bytes.Equal(a, b) {
			t.Errorf("cmacAES128 not deterministic for key=%x message=%x", key, message)
		}
		if len(a) != blockSize {
			t.Errorf("cmac output length = %d, want %d", len(a), blockSize)
		}
	})
}
