package domain

import (
	"strings"

	"github.com/narwhalmedia/catalog/internal/domain/specification"
)

const likeEscape = `\`

// containsPattern builds a case-insensitive LIKE pattern with wildcards escaped.
func containsPattern(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// normalizeNames lower-cases, trims and de-duplicates names, dropping blanks.
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func normalizeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func intersects(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// TitleContainsSpecification matches media whose title contains a substring.
type TitleContainsSpecification struct {
	Table string
	Title string
}

func (s *TitleContainsSpecification) IsSatisfiedBy(candidate interface{}) bool {
	m, ok := candidate.(MediaItem)
	return ok && containsFold(m.GetTitle(), s.Title)
}

func (s *TitleContainsSpecification) ToSQL() (string, []interface{}) {
	return "LOWER(" + s.Table + ".title) LIKE ? ESCAPE '" + likeEscape + "'", []interface{}{containsPattern(s.Title)}
}

// NameContainsSpecification matches catalog entries whose name contains a substring.
type NameContainsSpecification struct {
	Column string
	Name   string
}

func (s *NameContainsSpecification) IsSatisfiedBy(candidate interface{}) bool {
	switch c := candidate.(type) {
	case interface{ GetName() string }:
		return containsFold(c.GetName(), s.Name)
	case *MovieCrew:
		return containsFold(c.FullName, s.Name)
	}
	return false
}

func (s *NameContainsSpecification) ToSQL() (string, []interface{}) {
	return "LOWER(" + s.Column + ") LIKE ? ESCAPE '" + likeEscape + "'", []interface{}{containsPattern(s.Name)}
}

// DeveloperNameSpecification matches games whose developer name contains a substring.
type DeveloperNameSpecification struct {
	Name string
}

func (s *DeveloperNameSpecification) IsSatisfiedBy(candidate interface{}) bool {
	g, ok := candidate.(*Game)
	return ok && g.Developer != nil && containsFold(g.Developer.Name, s.Name)
}

func (s *DeveloperNameSpecification) ToSQL() (string, []interface{}) {
	return "games.developer_id IN (SELECT id FROM developers WHERE LOWER(name) LIKE ? ESCAPE '" + likeEscape + "')",
		[]interface{}{containsPattern(s.Name)}
}

// PlatformsSpecification matches games available on any of the named platforms.
type PlatformsSpecification struct {
	Names []string
}

func (s *PlatformsSpecification) IsSatisfiedBy(candidate interface{}) bool {
	g, ok := candidate.(*Game)
	return ok && intersects(g.PlatformNames(), s.Names)
}

func (s *PlatformsSpecification) ToSQL() (string, []interface{}) {
	return "games.id IN (SELECT gp.game_id FROM game_platforms gp JOIN platforms p ON p.id = gp.platform_id WHERE LOWER(p.name) IN ?)",
		[]interface{}{s.Names}
}

// GenresSpecification matches games tagged with any of the named genres.
type GenresSpecification struct {
	Names []string
}

func (s *GenresSpecification) IsSatisfiedBy(candidate interface{}) bool {
	g, ok := candidate.(*Game)
	return ok && intersects(g.GenreNames(), s.Names)
}

func (s *GenresSpecification) ToSQL() (string, []interface{}) {
	return "games.id IN (SELECT gg.game_id FROM game_genres gg JOIN genres g ON g.id = gg.genre_id WHERE LOWER(g.name) IN ?)",
		[]interface{}{s.Names}
}

// CrewNameSpecification matches movies with a crew member whose full name contains a substring.
type CrewNameSpecification struct {
	Name string
}

func (s *CrewNameSpecification) IsSatisfiedBy(candidate interface{}) bool {
	m, ok := candidate.(*Movie)
	if !ok {
		return false
	}
	for _, r := range m.CrewRoles {
		if r.Crew != nil && containsFold(r.Crew.FullName, s.Name) {
			return true
		}
	}
	return false
}

func (s *CrewNameSpecification) ToSQL() (string, []interface{}) {
	return "movies.id IN (SELECT r.movie_id FROM movie_crew_roles r JOIN movie_crew c ON c.id = r.crew_id WHERE LOWER(c.full_name) LIKE ? ESCAPE '" + likeEscape + "')",
		[]interface{}{containsPattern(s.Name)}
}

// CrewIDsSpecification matches movies featuring any of the given crew members.
type CrewIDsSpecification struct {
	IDs []uint
}

func (s *CrewIDsSpecification) IsSatisfiedBy(candidate interface{}) bool {
	m, ok := candidate.(*Movie)
	if !ok {
		return false
	}
	for _, r := range m.CrewRoles {
		for _, id := range s.IDs {
			if r.CrewID == id {
				return true
			}
		}
	}
	return false
}

func (s *CrewIDsSpecification) ToSQL() (string, []interface{}) {
	return "movies.id IN (SELECT movie_id FROM movie_crew_roles WHERE crew_id IN ?)", []interface{}{s.IDs}
}

// Specification composes the active game filters. Scalar filters match
// substrings; each set filter matches if any listed value matches; distinct
// filters must all hold.
func (f GameFilter) Specification() specification.Specification {
	var parts []specification.Specification
	if t := strings.TrimSpace(f.Title); t != "" {
		parts = append(parts, &TitleContainsSpecification{Table: "games", Title: t})
	}
	if d := strings.TrimSpace(f.Developer); d != "" {
		parts = append(parts, &DeveloperNameSpecification{Name: d})
	}
	if names := normalizeNames(f.Platforms); len(names) > 0 {
		parts = append(parts, &PlatformsSpecification{Names: names})
	}
	if names := normalizeNames(f.Genres); len(names) > 0 {
		parts = append(parts, &GenresSpecification{Names: names})
	}
	return specification.And(parts...)
}

// Specification composes the active movie filters.
func (f MovieFilter) Specification() specification.Specification {
	var parts []specification.Specification
	if t := strings.TrimSpace(f.Title); t != "" {
		parts = append(parts, &TitleContainsSpecification{Table: "movies", Title: t})
	}
	if n := strings.TrimSpace(f.CrewName); n != "" {
		parts = append(parts, &CrewNameSpecification{Name: n})
	}
	if ids := normalizeIDs(f.CrewIDs); len(ids) > 0 {
		parts = append(parts, &CrewIDsSpecification{IDs: ids})
	}
	return specification.And(parts...)
}

// NameFilter builds the optional name-contains filter for catalog listings.
func NameFilter(column, name string) specification.Specification {
	if n := strings.TrimSpace(name); n != "" {
		return &NameContainsSpecification{Column: column, Name: n}
	}
	return specification.All()
}
