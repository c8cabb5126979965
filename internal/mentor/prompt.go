package mentor

const noExperience = "No prior experience"

const roadmapPrompt = `As a career mentor, create a detailed roadmap for someone who wants to become a %s. Their current skills are: %s.

Provide exactly 5 milestones. For each milestone include:
- A short title
- 3 to 4 specific, measurable goals
- Recommended resources or certifications
- An estimated time to complete

Format the response with clear, structured sections and a heading for each milestone.`

const projectPlanPrompt = `Create a detailed project plan for the following project.

Project title: %s
Project description: %s

Break the project down into phases. For each phase use a header of the form "Phase 1:", "Phase 2:" and so on, followed by:
- The phase title
- Numbered tasks
- A "Deliverables:" section
- A "Time Estimate:" section

Keep the plan practical and actionable.`
