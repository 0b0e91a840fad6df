package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"skill-hire-backend/models"
)

func TestRouteTable(t *testing.T) {
	allow := AllowByRoleFunc(AllRoles)

	t.Run(`param segments`, func(t *testing.T) {
		routePath, method, err := parseSwaggerPattern("/api/recruiter/submission/{id}/history [get]")
		require.NoError(t, err)
		require.Equal(t, "GET", method)

		table := newRouteTable()
		table.add(routePath, allow)
		_, found := table.find("/api/recruiter/submission/123-321/history")
		require.True(t, found)
		_, found = table.find("/api/recruiter/submission/history")
		require.False(t, found)
		_, found = table.find("/api/recruiter/submission//history")
		require.False(t, found)
	})

	t.Run(`exact path wins`, func(t *testing.T) {
		table := newRouteTable()
		table.add("/api/recruiter/{kind}/{id}", AllowByRoleFunc(RecruiterRoleSet))
		table.add("/api/recruiter/submissions/export", AllowByRoleFunc(IntervieweeRoleSet))

		handler, found := table.find("/api/recruiter/submissions/export")
		require.True(t, found)
		require.True(t, handler("u", models.IntervieweeRole, ""))

		handler, found = table.find("/api/recruiter/submission/qwe-ewr123-wr-12")
		require.True(t, found)
		require.True(t, handler("u", models.RecruiterRole, ""))

		_, found = table.find("/api/recruiter/submission/qwe/extra")
		require.False(t, found)
	})

	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/recruiter/company")
		require.Error(t, err)
		_, _, err = parseSwaggerPattern("/api/recruiter/company []")
		require.Error(t, err)
	})

	t.Run(`clean path`, func(t *testing.T) {
		require.Equal(t, "/", cleanPath(""))
		require.Equal(t, "/api/auth/me", cleanPath("api//auth/me/"))
	})
}

func TestRules(t *testing.T) {
	provider := NewHandler("/api")

	check := func(method, path string, role models.UserRole) bool {
		handler, found := provider.GetRuleFunc(method, path)
		require.True(t, found, "%s %s has no rule", method, path)
		return handler("user-id", role, path)
	}

	t.Run(`recruiter only routes`, func(t *testing.T) {
		require.True(t, check("POST", "/api/recruiter/company", models.RecruiterRole))
		require.False(t, check("POST", "/api/recruiter/company", models.IntervieweeRole))
		require.True(t, check("PATCH", "/api/recruiter/submission/abc", models.RecruiterRole))
		require.False(t, check("PUT", "/api/recruiter/submission/abc", models.IntervieweeRole))
		require.True(t, check("GET", "/api/recruiter/submissions/export", models.RecruiterRole))
	})

	t.Run(`interviewee only routes`, func(t *testing.T) {
		require.True(t, check("POST", "/api/interviewee/submit", models.IntervieweeRole))
		require.False(t, check("POST", "/api/interviewee/submit", models.RecruiterRole))
		require.False(t, check("GET", "/api/interviewee/challenge/abc", models.RecruiterRole))
	})

	t.Run(`shared routes`, func(t *testing.T) {
		require.True(t, check("GET", "/api/recruiter/companies/abc", models.IntervieweeRole))
		require.True(t, check("GET", "/api/recruiter/positions/abc", models.IntervieweeRole))
		require.True(t, check("GET", "/api/auth/me", models.RecruiterRole))
	})

	t.Run(`unknown route`, func(t *testing.T) {
		_, found := provider.GetRuleFunc("DELETE", "/api/recruiter/company")
		require.False(t, found)
		_, found = provider.GetRuleFunc("GET", "/recruiter/company")
		require.False(t, found)
	})

	t.Run(`method is case insensitive`, func(t *testing.T) {
		require.True(t, check("get", "/api/recruiter/challenges/", models.RecruiterRole))
	})

	t.Run(`permissions`, func(t *testing.T) {
		permissions := provider.GetPermissions(models.IntervieweeRole)
		require.ElementsMatch(t, []models.Permission{models.SubmitPermission, models.ViewPermission, models.ExportPermission},
			permissions[models.SubmissionModule])
		require.NotContains(t, permissions, models.QuestionModule)
	})
}
