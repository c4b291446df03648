package mcpserver

// CatalogFormatContract describes the YAML catalog seed format that LLM
// consumers should reference when reasoning about catalog content.
const CatalogFormatContract = `# Cantor Catalog Format Contract

The planner loads its catalog from a directory of YAML seed files:
` + "`songs.yaml`" + `, ` + "`musicians.yaml`" + `, ` + "`setlists.yaml`" + `, ` + "`rehearsals.yaml`" + `.
Missing files are fine; that collection simply starts empty. Files are
hot-reloaded when they change on disk.

## songs.yaml

` + "```" + `yaml
songs:
  - id: amazing-grace            # REQUIRED, unique
    title: Amazing Grace         # REQUIRED
    artist: John Newton
    key: G                       # tonal center, e.g. G, C, D
    tempo: slow                  # slow | medium | fast
    bpm: 72
    time_signature: "3/4"
    difficulty: beginner         # beginner | intermediate | advanced | expert
    genre: hymn                  # hymn | contemporary | worship | gospel | traditional
    language: en
    themes: [grace, redemption, salvation]
    lyrics: |
      Amazing grace, how sweet the sound...
    duration_seconds: 240        # REQUIRED, must be positive
    is_public_domain: true
    tags: [classic, favorite]
    instruments:
      - {name: piano, type: keys, is_required: true}
` + "```" + `

## musicians.yaml

` + "```" + `yaml
musicians:
  - id: m-sarah
    name: Sarah
    skill_level: advanced        # beginner | intermediate | advanced | professional
    instruments: [piano, organ]
    voice_parts: [alto]
    availability:                # keys MUST be lowercase English weekday names
      sunday: true
      wednesday: true
    is_active: true
` + "```" + `

## Rules

1. **Ids are stable strings.** Set lists and rehearsals reference songs and
   musicians by id; never reuse or rename an id in place.
2. **Durations are seconds and must be positive.**
3. **Availability keys** are exactly the seven lowercase English weekday
   names ("sunday" ... "saturday"); anything else fails catalog validation.
4. **Themes and tags** are free text matched case-insensitively by
   substring; keep them short and lowercase.
5. **Keys** use plain note names (C, G, D, A, E, F ...). Key-flow smoothing
   only understands the common major keys; others are left untouched.
6. **Encoding** is UTF-8. Environment variables in seed files
   (` + "`${VAR}`" + `) are expanded at load time.
`
