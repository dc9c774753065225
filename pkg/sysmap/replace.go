package sysmap

import "context"

// Publisher stores maps on a Zabbix server.
type Publisher interface {
	MapIDs(ctx context.Context, name string) ([]string, error)
	DeleteMaps(ctx context.Context, ids ...string) error
	CreateMap(ctx context.Context, m *Map) (string, error)
}

// Replacement reports what [Replace] did.
type Replacement struct {
	// Deleted is the ID of the map that was removed, if any.
	Deleted string
	// Created is the ID of the new map.
	Created string
}

// Replace deletes the first existing map named m.Name, then creates m.
// There is no confirmation and no rollback: if creation fails the old map
// stays deleted.
func Replace(ctx context.Context, p Publisher, m *Map) (Replacement, error) {
	var r Replacement

	ids, err := p.MapIDs(ctx, m.Name)
	if err != nil {
		return r, err
	}
	if len(ids) > 0 {
		if err := p.DeleteMaps(ctx, ids[0]); err != nil {
			return r, err
		}
		r.Deleted = ids[0]
	}

	r.Created, err = p.CreateMap(ctx, m)
	return r, err
}
