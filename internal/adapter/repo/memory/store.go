// Package memory is the in-process twin of the postgres adapter, used by
// tests and by the server when no database is configured. The TxManager's
// store lock doubles as the transaction: repos touch the maps without
// locking and rely on every use-case mutation running inside RunInTx.
package memory

import (
	"sync"

	"storyforge/internal/domain/story"
)

type episodeBooking struct {
	OwnerID   string
	OrgID     string
	EpisodeID string
}

type Store struct {
	mu             sync.RWMutex
	actions        map[string]story.Action
	bookings       map[string]episodeBooking
	plots          map[string]story.Plot
	beats          map[string]story.Beat
	balances       map[string]*story.ResourcePool
	armies         map[string]story.Army
	orgMembers     map[string]bool
	traits         map[string]int
	knacks         map[string]int
	currentEpisode string
}

func NewStore() *Store {
	return &Store{
		actions:        make(map[string]story.Action),
		bookings:       make(map[string]episodeBooking),
		plots:          make(map[string]story.Plot),
		beats:          make(map[string]story.Beat),
		balances:       make(map[string]*story.ResourcePool),
		armies:         make(map[string]story.Army),
		orgMembers:     make(map[string]bool),
		traits:         make(map[string]int),
		knacks:         make(map[string]int),
		currentEpisode: "episode-1",
	}
}

func memberKey(orgID, participantID string) string {
	return orgID + "::" + participantID
}

func traitKey(participantID, kind, name string) string {
	return participantID + "::" + kind + "::" + name
}

func (s *Store) SeedPlot(p story.Plot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plots[p.ID] = p
}

func (s *Store) SeedArmy(a story.Army) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armies[a.ID] = a
}

func (s *Store) SeedOrgMember(orgID, participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgMembers[memberKey(orgID, participantID)] = true
}

func (s *Store) SeedBalance(participantID string, pool story.ResourcePool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := pool
	s.balances[participantID] = &p
}

func (s *Store) SeedTrait(participantID, kind, name string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traits[traitKey(participantID, kind, name)] = value
}

func (s *Store) SeedKnack(participantID, stat, skill string, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knacks[traitKey(participantID, stat, skill)] = level
}

func (s *Store) SetCurrentEpisode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentEpisode = id
}

func (s *Store) Balance(participantID string) story.ResourcePool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.balances[participantID]; ok {
		return *p
	}
	return story.ResourcePool{}
}

// cloneAction deep-copies the aggregate so callers never alias the stored
// slices.
func cloneAction(a story.Action) story.Action {
	out := a
	out.Assists = append([]story.Assist(nil), a.Assists...)
	out.Requirements = append([]story.Requirement(nil), a.Requirements...)
	out.Orders = append([]story.OrderHandle(nil), a.Orders...)
	return out
}
