package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ubermelon/internal/repos"
	"ubermelon/internal/services"
)

func newAuthService(t *testing.T) (*services.AuthService, *repos.SessionRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sessRepo := repos.NewSessionRepo(db)
	return services.NewAuthService(repos.NewCustomerRepo(db), sessRepo), sessRepo
}

func TestLogin_Branches(t *testing.T) {
	svc, _ := newAuthService(t)
	sid := "sess-login"

	_, err := svc.Login(sid, "nobody@ubermelon.com", "Passw0rd!")
	require.ErrorIs(t, err, services.ErrNoSuchEmail)

	_, err = svc.Login(sid, "sadie@ubermelon.com", "wrong")
	require.ErrorIs(t, err, services.ErrWrongPassword)

	c, err := svc.Login(sid, "sadie@ubermelon.com", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "sadie@ubermelon.com", c.Email)
	require.Equal(t, "Sadie", c.FirstName)
}

func TestLogin_SecondLoginOverwritesIdentity(t *testing.T) {
	svc, sessRepo := newAuthService(t)
	sid := "sess-overwrite"

	_, err := svc.Login(sid, "sadie@ubermelon.com", "Passw0rd!")
	require.NoError(t, err)
	_, err = svc.Login(sid, "nuvi@ubermelon.com", "Passw0rd!")
	require.NoError(t, err)

	email, err := sessRepo.CustomerEmail(sid)
	require.NoError(t, err)
	require.Equal(t, "nuvi@ubermelon.com", email)
}

func TestCurrentCustomer_AnonymousIsNil(t *testing.T) {
	svc, _ := newAuthService(t)

	c, err := svc.CurrentCustomer("anon-session")
	require.NoError(t, err)
	require.Nil(t, c)
}
