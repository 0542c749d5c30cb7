package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencyhub-api/internal/application/ports"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type invitationFixture struct {
	uc          *usecase.InvitationUseCase
	users       *fakeUserRepo
	invitations *fakeInvitationRepo
	notifs      *fakeNotificationRepo
	identity    *fakeIdentityProvider
}

func newInvitationFixture() *invitationFixture {
	users := newFakeUserRepo()
	invitations := newFakeInvitationRepo()
	notifs := newFakeNotificationRepo()
	identity := &fakeIdentityProvider{}
	tx := &fakeTxRunner{users: users, invitations: invitations, notifications: notifs}
	return &invitationFixture{
		uc:          usecase.NewInvitationUseCase(tx, invitations, users, identity, testLogger()),
		users:       users,
		invitations: invitations,
		notifs:      notifs,
		identity:    identity,
	}
}

func testPrincipal() *ports.Principal {
	return &ports.Principal{
		ID:        "principal-1",
		Email:     "nuevo@equipo.com",
		Name:      "Ana García",
		AvatarURL: "https://cdn.test/ana.png",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyAndAccept
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyAndAccept_InvitacionPendiente_ProvisionaUsuario(t *testing.T) {
	fx := newInvitationFixture()
	require.NoError(t, fx.invitations.Create(&entity.Invitation{
		ID:       "inv-1",
		Email:    "nuevo@equipo.com",
		AgencyID: "agency-1",
		Role:     entity.RoleSubAccountUser,
		Status:   entity.InvitationPending,
	}))

	out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, "agency-1", out.AgencyID)

	// Usuario provisionado con el ID del principal y el rol de la invitación
	user, err := fx.users.GetByID("principal-1")
	require.NoError(t, err)
	require.NotNil(t, user, "el usuario debe quedar creado")
	assert.Equal(t, "agency-1", user.AgencyID)
	assert.Equal(t, "nuevo@equipo.com", user.Email)
	assert.Equal(t, "Ana García", user.Name)
	assert.Equal(t, entity.RoleSubAccountUser, user.Role)

	// La invitación se consume
	assert.Equal(t, 0, fx.invitations.count(), "la invitación debe quedar consumida")

	// Notificación de ingreso con el formato "<nombre> | <descripción>"
	entries := fx.notifs.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana García | "+usecase.JoinedAgencyDescription, entries[0].Text)
	assert.Equal(t, "principal-1", entries[0].UserID)
	assert.Equal(t, "agency-1", entries[0].AgencyID)

	// Rol propagado al proveedor de identidad
	require.Equal(t, 1, fx.identity.callCount())
	assert.Equal(t, identityCall{principalID: "principal-1", role: entity.RoleSubAccountUser}, fx.identity.calls[0])
}

func TestVerifyAndAccept_RolVacio_UsaSubAccountUser(t *testing.T) {
	fx := newInvitationFixture()
	require.NoError(t, fx.invitations.Create(&entity.Invitation{
		ID:       "inv-1",
		Email:    "nuevo@equipo.com",
		AgencyID: "agency-1",
		Status:   entity.InvitationPending,
	}))

	out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, "agency-1", out.AgencyID)

	user, _ := fx.users.GetByID("principal-1")
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleSubAccountUser, user.Role)
}

// Los roles administrativos nunca se provisionan por invitación: la invitación
// queda intacta, no se crea usuario y no se sincroniza rol.
func TestVerifyAndAccept_RolAdministrativo_RechazaProvisionamiento(t *testing.T) {
	for _, role := range []string{entity.RoleAgencyOwner, entity.RoleAgencyAdmin} {
		t.Run(role, func(t *testing.T) {
			fx := newInvitationFixture()
			require.NoError(t, fx.invitations.Create(&entity.Invitation{
				ID:       "inv-1",
				Email:    "nuevo@equipo.com",
				AgencyID: "agency-1",
				Role:     role,
				Status:   entity.InvitationPending,
			}))

			out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
			require.NoError(t, err)
			assert.Empty(t, out.AgencyID, "no debe reportar agencia")

			assert.Equal(t, 0, fx.users.count(), "no debe crearse usuario")
			assert.Equal(t, 1, fx.invitations.count(), "la invitación debe quedar intacta")
			assert.Equal(t, 0, fx.identity.callCount(), "no debe sincronizarse rol")
		})
	}
}

func TestVerifyAndAccept_SinInvitacion_DevuelveMembresiaExistente(t *testing.T) {
	fx := newInvitationFixture()
	require.NoError(t, fx.users.Create(&entity.User{
		ID:       "user-1",
		AgencyID: "agency-7",
		Email:    "nuevo@equipo.com",
		Name:     "Ana García",
		Role:     entity.RoleSubAccountUser,
	}))

	out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, "agency-7", out.AgencyID)
	assert.Empty(t, fx.notifs.all(), "sin efectos secundarios")
}

func TestVerifyAndAccept_SinInvitacionNiUsuario_DevuelveVacio(t *testing.T) {
	fx := newInvitationFixture()

	out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
	require.NoError(t, err)
	assert.Empty(t, out.AgencyID)
}

func TestVerifyAndAccept_SinPrincipal_RetornaUnauthenticated(t *testing.T) {
	fx := newInvitationFixture()

	_, err := fx.uc.VerifyAndAccept(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

// Doble envío: el segundo request pierde el borrado condicional y cae a la rama
// de usuario existente sin duplicar efectos.
func TestVerifyAndAccept_InvitacionYaReclamada_CaeAMembresiaExistente(t *testing.T) {
	fx := newInvitationFixture()
	require.NoError(t, fx.invitations.Create(&entity.Invitation{
		ID:       "inv-1",
		Email:    "nuevo@equipo.com",
		AgencyID: "agency-1",
		Role:     entity.RoleSubAccountUser,
		Status:   entity.InvitationPending,
	}))
	// El ganador de la carrera ya provisionó al usuario
	require.NoError(t, fx.users.Create(&entity.User{
		ID:       "principal-1",
		AgencyID: "agency-1",
		Email:    "nuevo@equipo.com",
		Name:     "Ana García",
		Role:     entity.RoleSubAccountUser,
	}))
	fx.invitations.forceClaimed = true

	out, err := fx.uc.VerifyAndAccept(context.Background(), testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, "agency-1", out.AgencyID)

	assert.Equal(t, 1, fx.users.count(), "no debe duplicarse el usuario")
	assert.Empty(t, fx.notifs.all(), "no debe duplicarse la notificación")
	assert.Equal(t, 0, fx.identity.callCount(), "el perdedor no sincroniza rol")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateTeamUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTeamUser_RolNormal_CreaEnLaAgencia(t *testing.T) {
	fx := newInvitationFixture()
	now := time.Now()

	created, err := fx.uc.CreateTeamUser("agency-3", &entity.User{
		ID:        "user-9",
		Email:     "miembro@equipo.com",
		Name:      "Miembro",
		Role:      entity.RoleSubAccountGuest,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "agency-3", created.AgencyID)

	stored, _ := fx.users.GetByID("user-9")
	require.NotNil(t, stored)
	assert.Equal(t, "agency-3", stored.AgencyID)
}

func TestCreateTeamUser_RolAdministrativo_NoCrea(t *testing.T) {
	fx := newInvitationFixture()

	created, err := fx.uc.CreateTeamUser("agency-3", &entity.User{
		ID:   "user-9",
		Role: entity.RoleAgencyOwner,
	})
	require.NoError(t, err)
	assert.Nil(t, created, "roles administrativos no se provisionan por este camino")
	assert.Equal(t, 0, fx.users.count())
}
