package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/contract"
	"teamsync-be/internal/repository/specification"
	"teamsync-be/internal/repository/unitofwork"
	"teamsync-be/pkg/events"
	"teamsync-be/pkg/llm"
	"teamsync-be/pkg/media"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database. Transactions are not
// isolated; Begin/Commit/Rollback only count calls.
type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	projects map[uuid.UUID]*entity.Project
	teams    map[uuid.UUID]*entity.Team
	sessions map[uuid.UUID]*entity.ChatSession
	messages []*entity.ChatMessage

	commits int
	failOn  map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[uuid.UUID]*entity.User{},
		projects: map[uuid.UUID]*entity.Project{},
		teams:    map[uuid.UUID]*entity.Team{},
		sessions: map[uuid.UUID]*entity.ChatSession{},
		failOn:   map[string]error{},
	}
}

func (s *fakeStore) fail(op string) error {
	return s.failOn[op]
}

func (s *fakeStore) addUser(u *entity.User) *entity.User {
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	s.users[u.Id] = u
	return u
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{store: s}
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error {
	u.store.commits++
	return nil
}
func (u *fakeUoW) Rollback() error { return nil }

func (u *fakeUoW) UserRepository() contract.UserRepository {
	return &fakeUserRepo{u.store}
}
func (u *fakeUoW) ProjectRepository() contract.ProjectRepository {
	return &fakeProjectRepo{u.store}
}
func (u *fakeUoW) TeamRepository() contract.TeamRepository {
	return &fakeTeamRepo{u.store}
}
func (u *fakeUoW) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{u.store}
}
func (u *fakeUoW) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{u.store}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByIDs:
			if !containsID(sp.IDs, u.Id) {
				return false
			}
		case specification.ExcludeID:
			if u.Id == sp.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != strings.ToLower(strings.TrimSpace(sp.Email)) {
				return false
			}
		case specification.ByRoll:
			if u.Roll != strings.TrimSpace(sp.Roll) {
				return false
			}
		case specification.ByEmailOrRoll:
			if u.Email != strings.ToLower(sp.Email) && u.Roll != sp.Roll {
				return false
			}
		case specification.WithoutTeam:
			if u.TeamId != nil {
				return false
			}
		case specification.DomainsContainAny:
			if !intersects(u.Domains, sp.Domains) {
				return false
			}
		case specification.ProfileSearch:
			term := strings.ToLower(sp.Term)
			hay := strings.ToLower(strings.Join(append([]string{u.FullName, u.College, u.Email}, u.Skills...), " "))
			if !strings.Contains(hay, term) {
				return false
			}
		}
	}
	return true
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.s.fail("user.create"); err != nil {
		return err
	}
	for _, u := range r.s.users {
		if u.Email == user.Email || u.Roll == user.Roll {
			return contract.ErrDuplicate
		}
	}
	r.s.users[user.Id] = copyUser(user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.users[user.Id] = copyUser(user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	if err := r.s.fail("user.find"); err != nil {
		return nil, err
	}
	var res []*entity.User
	for _, u := range r.s.users {
		if userMatches(u, specs) {
			res = append(res, copyUser(u))
		}
	}
	return res, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeUserRepo) SetTeam(ctx context.Context, userIds []uuid.UUID, teamId *uuid.UUID) error {
	if err := r.s.fail("user.setTeam"); err != nil {
		return err
	}
	for _, id := range userIds {
		if u, ok := r.s.users[id]; ok {
			if teamId == nil {
				u.TeamId = nil
			} else {
				t := *teamId
				u.TeamId = &t
			}
		}
	}
	return nil
}

type fakeProjectRepo struct{ s *fakeStore }

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	if err := r.s.fail("project.create"); err != nil {
		return err
	}
	c := *project
	r.s.projects[project.Id] = &c
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.projects, id)
	return nil
}

func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var res []*entity.Project
next:
	for _, p := range r.s.projects {
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if p.Id != sp.ID {
					continue next
				}
			case specification.OwnedBy:
				if p.OwnerId != sp.OwnerID {
					continue next
				}
			}
		}
		c := *p
		res = append(res, &c)
	}
	return res, nil
}

type fakeTeamRepo struct{ s *fakeStore }

func (r *fakeTeamRepo) Create(ctx context.Context, team *entity.Team) error {
	if err := r.s.fail("team.create"); err != nil {
		return err
	}
	c := *team
	r.s.teams[team.Id] = &c
	return nil
}

func (r *fakeTeamRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	for _, spec := range specs {
		if sp, ok := spec.(specification.ByID); ok {
			if t, found := r.s.teams[sp.ID]; found {
				c := *t
				return &c, nil
			}
		}
	}
	return nil, nil
}

type fakeSessionRepo struct{ s *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	c := *session
	r.s.sessions[session.Id] = &c
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	return r.Create(ctx, session)
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var res []*entity.ChatSession
next:
	for _, cs := range r.s.sessions {
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if cs.Id != sp.ID {
					continue next
				}
			case specification.UserOwnedBy:
				if cs.UserId != sp.UserID {
					continue next
				}
			}
		}
		c := *cs
		res = append(res, &c)
	}
	return res, nil
}

type fakeMessageRepo struct{ s *fakeStore }

// CreateMany enforces the unique (session, position) index.
func (r *fakeMessageRepo) CreateMany(ctx context.Context, messages []*entity.ChatMessage) error {
	for _, m := range messages {
		for _, existing := range r.s.messages {
			if existing.ChatSessionId == m.ChatSessionId && existing.Position == m.Position {
				return contract.ErrDuplicate
			}
		}
	}
	for _, m := range messages {
		c := *m
		r.s.messages = append(r.s.messages, &c)
	}
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var res []*entity.ChatMessage
	for _, m := range r.s.messages {
		keep := true
		for _, spec := range specs {
			if sp, ok := spec.(specification.ByChatSessionID); ok && m.ChatSessionId != sp.ChatSessionID {
				keep = false
			}
		}
		if keep {
			c := *m
			res = append(res, &c)
		}
	}
	return res, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

// fakeLLM replays canned replies and records what it was asked.
type fakeLLM struct {
	reply   string
	err     error
	calls   int
	prompts []string
	history []llm.Message
	onChat  func()
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	f.history = history
	if f.onChat != nil {
		f.onChat()
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeMediaHost struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeMediaHost) Upload(ctx context.Context, in media.UploadInput) (*media.Asset, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if in.Body != nil {
		if _, err := io.Copy(io.Discard, in.Body); err != nil {
			return nil, err
		}
	}
	id := "teamsync_projects/" + in.Filename
	f.uploaded = append(f.uploaded, id)
	return &media.Asset{PublicId: id, URL: "https://cdn.test/" + id}, nil
}

func (f *fakeMediaHost) Delete(ctx context.Context, publicId string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, publicId)
	return nil
}

type fakeMailQueue struct {
	codes map[string]string
	err   error
}

func (f *fakeMailQueue) EnqueueOTP(ctx context.Context, email, code string) error {
	if f.codes == nil {
		f.codes = map[string]string{}
	}
	f.codes[email] = code
	return f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]string, len(f.events))
	for i, e := range f.events {
		res[i] = e.EventType()
	}
	return res
}

var errBoom = errors.New("boom")
