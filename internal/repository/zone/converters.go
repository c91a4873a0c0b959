package zone

import "dispatch/internal/entities"

func ToDomain(z *ZoneDB) *entities.Zone {
	if z == nil {
		return nil
	}
	return &entities.Zone{
		ID:       z.ID,
		Name:     z.Name,
		IsActive: z.IsActive,
	}
}

func ToDomainList(zonesDB []ZoneDB) []entities.Zone {
	if len(zonesDB) == 0 {
		return []entities.Zone{}
	}

	result := make([]entities.Zone, len(zonesDB))
	for i, zoneDB := range zonesDB {
		result[i] = *ToDomain(&zoneDB)
	}
	return result
}
