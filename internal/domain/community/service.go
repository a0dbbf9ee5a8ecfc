package community

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petpal-lite/internal/ports/assistant"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("post not found")
)

// Post es una publicación del feed. El feed vive en memoria con un seed
// fijo; no hay backend social detrás.
type Post struct {
	ID      int
	Author  string
	Avatar  string
	Image   string
	Caption string
	Likes   int
}

type Service struct {
	assistant assistant.Assistant

	mu     sync.Mutex
	posts  map[int]Post
	nextID int
}

func NewService(ai assistant.Assistant) *Service {
	s := &Service{
		assistant: ai,
		posts:     make(map[int]Post),
		nextID:    1,
	}
	for _, p := range seedPosts() {
		s.posts[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

func seedPosts() []Post {
	return []Post{
		{ID: 1, Author: "Jane Doe", Avatar: "https://picsum.photos/seed/jane/100", Image: "https://picsum.photos/seed/pet1/400", Caption: "Buddy enjoying the sunshine!", Likes: 125},
		{ID: 2, Author: "John Smith", Avatar: "https://picsum.photos/seed/john/100", Image: "https://picsum.photos/seed/pet2/400", Caption: "My sleepy cat, Mittens.", Likes: 230},
	}
}

// List devuelve el feed por id ascendente (orden de publicación).
func (s *Service) List() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Service) Add(author, avatar, image, caption string) (Post, error) {
	if strings.TrimSpace(author) == "" || strings.TrimSpace(image) == "" {
		return Post{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Post{
		ID:      s.nextID,
		Author:  strings.TrimSpace(author),
		Avatar:  strings.TrimSpace(avatar),
		Image:   strings.TrimSpace(image),
		Caption: strings.TrimSpace(caption),
	}
	s.nextID++
	s.posts[p.ID] = p
	return p, nil
}

func (s *Service) Like(id int) (Post, error) {
	return s.adjustLikes(id, +1)
}

func (s *Service) Unlike(id int) (Post, error) {
	return s.adjustLikes(id, -1)
}

func (s *Service) adjustLikes(id, delta int) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	p.Likes += delta
	if p.Likes < 0 {
		p.Likes = 0
	}
	s.posts[id] = p
	return p, nil
}

// NearbyVets busca veterinarias cercanas. Las coordenadas las aporta el
// cliente; sin ellas la función queda deshabilitada (equivale al permiso
// de geolocalización denegado).
func (s *Service) NearbyVets(ctx context.Context, lat, lon float64) ([]assistant.Vet, error) {
	return s.assistant.FindNearbyVets(ctx, lat, lon)
}
