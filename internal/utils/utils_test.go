package utils

import (
	"strings"
	"sync"
	"testing"
)

func TestGenerateReferralCode(t *testing.T) {
	code, err := GenerateReferralCode(5)
	if err != nil {
		t.Fatalf("GenerateReferralCode: %v", err)
	}
	if len(code) != 5 {
		t.Fatalf("len = %d, want 5", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(referralAlphabet, r) {
			t.Errorf("unexpected character %q in code %q", r, code)
		}
	}
}

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("user-1")
			defer unlock()
			counter++ // data race unless the lock serializes
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("b")
		unlockB()
		close(done)
	}()

	<-done // must not deadlock while "a" is held
}

func TestKeyedMutexDropsReleasedEntries(t *testing.T) {
	km := NewKeyedMutex()

	unlock := km.Lock("ephemeral")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(km.locks))
	}
}
