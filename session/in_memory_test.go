package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/krishnasingh-28/chatbot/core"
)

// Interface compliance (compile-time assertion)
var _ core.ConversationStore = (*InMemoryStore)(nil)

func TestInMemoryStore_GetOrCreateSeedsConversation(t *testing.T) {
	store := NewInMemoryStore()

	conv, err := store.GetOrCreate("fresh")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !conv.IsActive() {
		t.Error("new conversation should be active")
	}
	history := conv.History()
	if len(history) != 1 {
		t.Fatalf("expected exactly the system message, got %d messages", len(history))
	}
	if history[0].Role != core.RoleSystem || history[0].Content != DefaultSystemPrompt {
		t.Errorf("unexpected seed message: %+v", history[0])
	}
	if store.Size() != 1 {
		t.Errorf("expected 1 stored conversation, got %d", store.Size())
	}
}

func TestInMemoryStore_CustomSystemPrompt(t *testing.T) {
	store := NewInMemoryStore(func(o *Options) { o.SystemPrompt = "Be terse." })

	conv, _ := store.GetOrCreate("c")
	if got := conv.History()[0].Content; got != "Be terse." {
		t.Errorf("expected custom prompt, got %q", got)
	}
}

func TestInMemoryStore_SnapshotDoesNotLeakState(t *testing.T) {
	store := NewInMemoryStore()

	conv, _ := store.GetOrCreate("c")
	conv.Append(core.NewUserMessage("mutating the snapshot"))

	history, err := store.History("c")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("snapshot mutation leaked into the store: %d messages", len(history))
	}
}

func TestInMemoryStore_CloseUnknown(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Close("missing"); err != core.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.History("missing"); err != core.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryStore_CrossKeyIsolation(t *testing.T) {
	store := NewInMemoryStore()
	const turns = 50

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < turns; i++ {
				if err := store.Append(id, core.NewUserMessage(fmt.Sprintf("%s-%d", id, i))); err != nil {
					t.Errorf("Append(%s): %v", id, err)
					return
				}
			}
		}(id)
	}
	wg.Wait()

	for _, id := range []string{"a", "b"} {
		history, err := store.History(id)
		if err != nil {
			t.Fatalf("History(%s): %v", id, err)
		}
		if len(history) != turns+1 {
			t.Errorf("conversation %s: expected %d messages, got %d", id, turns+1, len(history))
		}
		for _, msg := range history[1:] {
			if msg.Content[:1] != id {
				t.Errorf("message %q leaked into conversation %s", msg.Content, id)
			}
		}
	}
}
