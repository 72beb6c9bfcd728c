package prompts

// Rule blocks appended to every scene generation request. The backend holds
// no session state, so every rule it must follow travels with the request.

const promptConstructionRules = `PROMPT CONSTRUCTION RULES:
After the scene narrative, you must issue exactly one prompt for player input.
- Vary the prompt type across scenes: "dialogue" (a character speaks), "action" (the party decides what to do), "dice_check" (fate decides an uncertain outcome).
- A "dice_check" prompt MUST name who rolls: set "target_character" for a single character, or "target_characters" for several. Never set both. Never leave both empty.
- Dice checks always use a single die, either "d6" or "d10". Set "dice_type" accordingly. Only dice_check prompts carry a dice_type.
- "dialogue" and "action" prompts may leave both targets empty to address the entire party.
- "prompt_text" must tell the players plainly what input is expected.`

const diceResolutionRules = `DICE RESOLUTION RULES:
The player's latest response answers your dice check. Interpret the rolled number as follows:
- Stat modifier for the relevant stat (strength, intelligence or agility): 16-20 gives +2, 11-15 gives +1, 6-10 gives +0, 1-5 gives -1.
- Add +1 if one of the character's skills plainly applies to the attempted task.
- d6: modified total of 4 or higher succeeds; an unmodified roll of 6 is a critical success; a modified total of 2 or lower is a critical failure.
- d10: modified total of 6 or higher succeeds; a modified total of 9 or higher is a critical success; a modified total of 3 or lower is a critical failure.
- Narrate the outcome so the consequence of the modified result is clear. Critical results should swing the scene hard, for better or worse.`

const impossibleActionRules = `IMPOSSIBLE ACTION RULES:
Players may only act with what their characters actually have.
- If a player uses an item that is not in that character's inventory, or a capability the character does not possess, do NOT let the action succeed.
- Narrate the refusal in-world (the sword is not on their belt, the spell fizzles for lack of training) and issue a new prompt for a feasible action.
- Never silently grant missing items or abilities.`

const assetConsistencyRules = `RECURRING CHARACTER AND OBJECT RULES:
- List every notable NPC or object visible in the new scene under "visible_assets", with a short visual description.
- KNOWN ASSETS below have already been established. When one reappears, reuse its name exactly and do NOT redefine its appearance.
- Only introduce a new named NPC or object when the story needs it.`

const responseContractRules = `RESPONSE REQUIREMENTS:
Respond with a single JSON object containing:
- "scene_text": the narrative for the new scene, 2-4 paragraphs of vivid second-person narration.
- "prompt": the next player prompt, following the PROMPT CONSTRUCTION RULES.
- "updated_characters": the FULL current sheet of every party member, reflecting any damage, healing, inventory or skill changes this scene caused. Include unchanged characters too.
- "game_status": "ongoing" while play continues, "completed" when the party has won, "failed" when the party is defeated (for example, every character at 0 health).
- "visible_assets": notable NPCs and objects present in this scene.`
