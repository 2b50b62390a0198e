package projecturl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tberndt/review-triage/internal/github"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    *ProjectInfo
		wantErr string
	}{
		{
			name: "valid org project URL",
			url:  "https://github.com/orgs/testorg/projects/123",
			want: &ProjectInfo{
				OwnerType:     github.OwnerTypeOrg,
				OwnerLogin:    "testorg",
				ProjectNumber: 123,
			},
		},
		{
			name: "valid user project URL",
			url:  "https://github.com/users/testuser/projects/456",
			want: &ProjectInfo{
				OwnerType:     github.OwnerTypeUser,
				OwnerLogin:    "testuser",
				ProjectNumber: 456,
			},
		},
		{
			name:    "not a GitHub URL",
			url:     "https://gitlab.com/orgs/testorg/projects/123",
			wantErr: "not a GitHub URL",
		},
		{
			name:    "missing path components",
			url:     "https://github.com/orgs/testorg",
			wantErr: "invalid project URL format",
		},
		{
			name:    "invalid owner type",
			url:     "https://github.com/repos/testorg/projects/123",
			wantErr: "invalid owner type in URL: repos",
		},
		{
			name:    "missing projects component",
			url:     "https://github.com/orgs/testorg/boards/123",
			wantErr: "invalid URL format: expected 'projects' as third component",
		},
		{
			name:    "non-numeric project number",
			url:     "https://github.com/orgs/testorg/projects/abc",
			wantErr: "invalid project number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.url)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
