package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
	"github.com/jhoicas/agencyhub-api/internal/domain/repository"
	"github.com/jhoicas/agencyhub-api/pkg/logger"
)

// Fakes en memoria de los puertos de persistencia, para tests de casos de uso
// sin PostgreSQL.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ── Users ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // por ID
	// subAccountOwners: subaccount_id → user (para GetByAgencySubAccount)
	subAccountOwners map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:            make(map[string]*entity.User),
		subAccountOwners: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	return r.Create(u)
}

func (r *fakeUserRepo) ListByAgency(agencyID string, limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if u.AgencyID == agencyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByAgencySubAccount(subAccountID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.subAccountOwners[subAccountID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// ── Agencies ──────────────────────────────────────────────────────────────────

type fakeAgencyRepo struct {
	agencies map[string]*entity.Agency
	sidebars map[string][]*entity.SidebarOption // por agency_id
}

func newFakeAgencyRepo() *fakeAgencyRepo {
	return &fakeAgencyRepo{
		agencies: make(map[string]*entity.Agency),
		sidebars: make(map[string][]*entity.SidebarOption),
	}
}

func (r *fakeAgencyRepo) Create(a *entity.Agency) error {
	cp := *a
	r.agencies[a.ID] = &cp
	return nil
}

func (r *fakeAgencyRepo) GetByID(id string) (*entity.Agency, error) {
	if a, ok := r.agencies[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAgencyRepo) Update(a *entity.Agency) error {
	return r.Create(a)
}

func (r *fakeAgencyRepo) ListSidebarOptions(agencyID string) ([]*entity.SidebarOption, error) {
	return r.sidebars[agencyID], nil
}

// ── SubAccounts ───────────────────────────────────────────────────────────────

type fakeSubAccountRepo struct {
	subs     map[string]*entity.SubAccount
	sidebars map[string][]*entity.SidebarOption // por sub_account_id
}

func newFakeSubAccountRepo() *fakeSubAccountRepo {
	return &fakeSubAccountRepo{
		subs:     make(map[string]*entity.SubAccount),
		sidebars: make(map[string][]*entity.SidebarOption),
	}
}

func (r *fakeSubAccountRepo) GetByID(id string) (*entity.SubAccount, error) {
	if s, ok := r.subs[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSubAccountRepo) ListByAgency(agencyID string) ([]*entity.SubAccount, error) {
	var out []*entity.SubAccount
	for _, s := range r.subs {
		if s.AgencyID == agencyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSubAccountRepo) ListSidebarOptions(subAccountID string) ([]*entity.SidebarOption, error) {
	return r.sidebars[subAccountID], nil
}

// ── Invitations ───────────────────────────────────────────────────────────────

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[string]*entity.Invitation
	// forceClaimed simula que otro request reclamó la invitación entre la lectura
	// y el borrado condicional.
	forceClaimed bool
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*entity.Invitation)}
}

func (r *fakeInvitationRepo) Create(inv *entity.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	r.invitations[inv.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) GetPendingByEmail(email string) (*entity.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invitations {
		if inv.Email == email && inv.Status == entity.InvitationPending {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvitationRepo) DeleteIfPending(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceClaimed {
		return false, nil
	}
	inv, ok := r.invitations[id]
	if !ok || inv.Status != entity.InvitationPending {
		return false, nil
	}
	delete(r.invitations, id)
	return true, nil
}

func (r *fakeInvitationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.invitations)
}

// ── Notifications ─────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	mu      sync.Mutex
	entries []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeNotificationRepo) ListByAgency(agencyID string, limit, offset int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []*entity.Notification
	for _, n := range r.entries {
		if n.AgencyID == agencyID {
			cp := *n
			filtered = append(filtered, &cp)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *fakeNotificationRepo) all() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, len(r.entries))
	copy(out, r.entries)
	return out
}

// ── Permissions ───────────────────────────────────────────────────────────────

type fakePermissionRepo struct {
	perms []*entity.Permission
}

func (r *fakePermissionRepo) ListByEmail(email string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, p := range r.perms {
		if p.Email == email {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Proveedor de identidad ────────────────────────────────────────────────────

type fakeIdentityProvider struct {
	mu    sync.Mutex
	calls []identityCall
}

type identityCall struct {
	principalID string
	role        string
}

func (f *fakeIdentityProvider) UpdateRoleMetadata(_ context.Context, principalID, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, identityCall{principalID: principalID, role: role})
	return nil
}

func (f *fakeIdentityProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	users         repository.UserRepository
	invitations   repository.InvitationRepository
	notifications repository.NotificationRepository
}

func (tx *fakeTxRunner) RunInvitationAcceptance(_ context.Context, fn func(
	users repository.UserRepository,
	invitations repository.InvitationRepository,
	notifications repository.NotificationRepository,
) error) error {
	return fn(tx.users, tx.invitations, tx.notifications)
}
