package services

import (
	"fmt"
	"strings"

	"travelsynth/internal/models/request_models"
)

type PromptServiceInterface interface {
	BuildItineraryPrompt(request request_models.GeneratePlanRequest) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// itineraryExample biases the model toward the exact document shape we
// validate downstream. It is static, so prompt output stays deterministic
// for identical trip parameters.
const itineraryExample = `{
  "days": [
    {
      "day": 1,
      "title": "Arrival and Local Exploration",
      "activities": [
        {
          "time": "Afternoon",
          "description": "Arrive at the main airport/station, transfer to accommodation and check-in.",
          "estimated_cost": "Varies (transport)",
          "booking_info": "Pre-book airport transfer for potentially lower rates."
        },
        {
          "time": "Late Afternoon",
          "description": "Take a walk around the neighborhood, locate nearby amenities (shops, cafes).",
          "estimated_cost": "Free"
        },
        {
          "time": "Evening",
          "description": "Dinner at a highly-rated mid-range local restaurant near your accommodation.",
          "estimated_cost": "$25-$40 per person",
          "alternatives": "Find a local market for street food if available."
        }
      ],
      "notes": "Purchase a multi-day public transport pass upon arrival if cost-effective."
    },
    {
      "day": 2,
      "title": "Cultural Highlights",
      "activities": [
        {
          "time": "9:00 AM",
          "description": "Visit the National Museum, focusing on the historical exhibits.",
          "estimated_cost": "$15",
          "booking_info": "Check opening hours. Tickets usually available at the door."
        },
        {
          "time": "1:00 PM",
          "description": "Lunch at a traditional cafe in the historic district.",
          "estimated_cost": "$15-$25 per person"
        },
        {
          "time": "7:00 PM",
          "description": "Attend a local cultural performance (e.g., music, dance).",
          "estimated_cost": "$30+",
          "booking_info": "Book tickets online in advance, especially during peak season."
        }
      ],
      "notes": "Wear comfortable shoes for walking."
    }
  ]
}`

// BuildItineraryPrompt turns a validated trip request into the instruction
// sent to the generation service, including the strict output contract.
func (p *PromptService) BuildItineraryPrompt(request request_models.GeneratePlanRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a detailed %d-day travel itinerary for %s.\n", request.Days, request.Destination)
	fmt.Fprintf(&prompt, "Focus on these interests: %s.\n", request.Interests)
	fmt.Fprintf(&prompt, "Adhere to a %s budget level.\n\n", request.NormalizedBudget())

	prompt.WriteString("Return the itinerary STRICTLY in the following JSON format. ")
	prompt.WriteString("Do not include any introductory text or markdown formatting like ```json. Just the raw JSON object.\n\n")
	prompt.WriteString(itineraryExample)
	prompt.WriteString("\n\n")

	fmt.Fprintf(&prompt, "Add more day objects as needed up to the requested number of days (%d).\n", request.Days)
	prompt.WriteString("Ensure each activity includes 'time', 'description', and optionally 'estimated_cost', 'booking_info', and 'alternatives'.\n")
	prompt.WriteString("Provide specific and actionable details for each activity.\n")

	return prompt.String()
}
