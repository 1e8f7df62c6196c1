package chatbot

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// KBProvider hands out the current knowledge base and swaps it atomically
// when the backing file changes. Holders of an old pointer keep a consistent
// snapshot; new requests see the reloaded data.
type KBProvider struct {
	mu      sync.RWMutex
	kb      *KnowledgeBase
	path    string
	watcher *fsnotify.Watcher
}

// NewKBProvider loads the knowledge base once. When path is non-empty the
// file is watched and reloaded on write.
func NewKBProvider(path string) (*KBProvider, error) {
	kb, err := LoadKnowledgeBase(path)
	if err != nil {
		return nil, err
	}

	p := &KBProvider{kb: kb, path: path}
	if path == "" {
		return p, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}
	p.watcher = watcher
	go p.watch()

	log.Printf("👀 Watching knowledge base: %s", path)
	return p, nil
}

// Current returns the active knowledge base snapshot.
func (p *KBProvider) Current() *KnowledgeBase {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.kb
}

func (p *KBProvider) Close() {
	if p.watcher != nil {
		p.watcher.Close()
	}
}

func (p *KBProvider) watch() {
	for {
		select {
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") && event.Name != p.path {
				continue
			}

			// Small delay so the write completes before we read
			time.Sleep(100 * time.Millisecond)

			kb, err := LoadKnowledgeBase(p.path)
			if err != nil {
				log.Printf("⚠️  Knowledge base reload failed, keeping previous: %v", err)
				continue
			}

			p.mu.Lock()
			p.kb = kb
			p.mu.Unlock()
			log.Printf("✅ Knowledge base reloaded: %s", p.path)

		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  Knowledge base watcher error: %v", err)
		}
	}
}
